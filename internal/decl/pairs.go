package decl

import (
	"go/constant"
	"go/token"
	"math"
)

// Duplicate records an entry whose key was written again later.
type Duplicate struct {
	// Overwritten is the earlier entry.
	Overwritten Pair
	// By is the later entry whose value wins.
	By Pair
}

// LastWins folds entries whose keys are equal as values of keyType: each
// distinct key keeps the position of its first occurrence and the value of
// its last one.
func (p Pairs) LastWins(keyType string) Pairs {
	out := make(Pairs, 0, len(p))

	for _, pair := range p {
		if i := out.index(pair.Key, keyType); i >= 0 {
			out[i].Value = pair.Value
			out[i].Line = pair.Line

			continue
		}

		out = append(out, pair)
	}

	return out
}

// Duplicates reports every entry that a later entry overwrites, in source
// order of the overwriting entry. Keys are compared as values of keyType.
func (p Pairs) Duplicates(keyType string) []Duplicate {
	var dups []Duplicate

	for j := range p {
		for i := j - 1; i >= 0; i-- {
			if SameKey(p[i].Key, p[j].Key, keyType) {
				dups = append(dups, Duplicate{Overwritten: p[i], By: p[j]})
				break
			}
		}
	}

	return dups
}

func (p Pairs) index(key Literal, keyType string) int {
	for i := range p {
		if SameKey(p[i].Key, key, keyType) {
			return i
		}
	}

	return -1
}

// SameKey reports whether two literals denote the same key of a map with
// the given key type. Values compare exactly, so 1, 0x1 and 1.0 are the
// same key; floating-point keys are first rounded to the precision of
// keyType. An empty keyType compares the exact constants.
func SameKey(a, b Literal, keyType string) bool {
	va, vb := keyValue(a, keyType), keyValue(b, keyType)
	if va.Kind() == constant.Unknown || vb.Kind() == constant.Unknown {
		return a.Text == b.Text
	}

	na, nb := isNumeric(va.Kind()), isNumeric(vb.Kind())
	if na != nb || (!na && va.Kind() != vb.Kind()) {
		return false
	}

	return constant.Compare(va, token.EQL, vb)
}

func isNumeric(k constant.Kind) bool {
	return k == constant.Int || k == constant.Float || k == constant.Complex
}

// keyValue returns the constant l becomes when converted to keyType.
// Literals that do not convert keep their exact value.
func keyValue(l Literal, keyType string) constant.Value {
	v := l.Value()
	if !isNumeric(v.Kind()) {
		return v
	}

	switch keyType {
	case "float32", "float64":
		f := constant.ToFloat(v)
		if f.Kind() == constant.Unknown {
			return v
		}

		return roundFloat(f, keyType == "float32")
	case "complex64", "complex128":
		c := constant.ToComplex(v)
		if c.Kind() == constant.Unknown {
			return v
		}

		single := keyType == "complex64"
		re := roundFloat(constant.Real(c), single)
		im := roundFloat(constant.Imag(c), single)

		return constant.BinaryOp(re, token.ADD, constant.MakeImag(im))
	}

	return v
}

// roundFloat rounds v to float32 or float64 precision. Values out of range
// are returned unchanged; they fail the assignability check instead.
func roundFloat(v constant.Value, single bool) constant.Value {
	var f float64
	if single {
		f32, _ := constant.Float32Val(v)
		f = float64(f32)
	} else {
		f, _ = constant.Float64Val(v)
	}

	if math.IsInf(f, 0) {
		return v
	}

	return constant.MakeFloat64(f)
}
