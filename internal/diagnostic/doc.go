// Package diagnostic provides structured errors and warnings for litgen
// declaration files.
//
// Every error diagnostic belongs to one named kind (see ErrSyntax and its
// siblings), so callers can branch with errors.Is no matter how many
// diagnostics were combined into the returned error.
package diagnostic
