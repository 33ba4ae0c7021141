package diagnostic

import (
	"github.com/cockroachdb/errors"
)

// Diagnostic codes. Each error code maps to one error kind below.
const (
	CodeSyntax        = "syntax"
	CodeLiteralType   = "literal_type"
	CodeNameCollision = "name_collision"
	CodeUnknownType   = "unknown_type"
	CodeInvalidName   = "invalid_name"
	CodeDuplicateKey  = "duplicate_key"
)

// Error kinds. Generation fails with an error wrapping one or more of these.
var (
	ErrSyntax        = errors.New("syntax error")
	ErrLiteralType   = errors.New("literal does not fit declared type")
	ErrNameCollision = errors.New("name collision")
	ErrUnknownType   = errors.New("unknown type")
	ErrInvalidName   = errors.New("invalid name")
)

var kinds = map[string]error{
	CodeSyntax:        ErrSyntax,
	CodeLiteralType:   ErrLiteralType,
	CodeNameCollision: ErrNameCollision,
	CodeUnknownType:   ErrUnknownType,
	CodeInvalidName:   ErrInvalidName,
}

// Kind returns the error kind for a diagnostic code, or nil for codes that
// never fail generation.
func Kind(code string) error {
	return kinds[code]
}
