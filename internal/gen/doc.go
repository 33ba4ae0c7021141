// Package gen provides deterministic Go code generation for declaration
// files.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - Map constructors, inserting entries in order (last write wins)
//   - Map constructors returning a folded composite literal
//   - Zero-sized marker types implementing get.Getter[T]
//   - Compile-time interface assertions
package gen
