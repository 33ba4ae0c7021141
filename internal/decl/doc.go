// Package decl provides the YAML schema, parsing and validation of litgen
// declaration files.
//
// A declaration file is the input of one code generation run. It feeds two
// independent generators: map constructors built from literal key/value
// pairs, and zero-sized marker types implementing get.Getter.
//
// # Schema Overview
//
//	version: "1"
//	package: basic            # optional, defaults to the target package
//	output: literals_gen.go   # optional, defaults to <snake_case(base)>_gen.go
//	accessor: litgen/get      # optional import path of get.Getter
//	maps:
//	  - name: Primes
//	    exported: true
//	    key: uint32            # optional, inferred from the first key
//	    value: uint32          # optional, inferred from the first value
//	    style: insert          # insert (default) or literal
//	    entries: "1 => 2, 3 => 4, 5 => 6"
//	  - name: codes
//	    entries:
//	      - "1 => 2"
//	      - {key: 3, value: 4}
//	getters: |
//	  Foo: uint32 = 10;
//	  export Bar: uint32 = 42;
//
// getters may also be a sequence of {name, type, value, exported} mappings.
//
// # Literals
//
// Keys, values and getter values are Go literals: integers, floats,
// imaginary numbers, runes, strings and the booleans true and false.
// Numeric literals may carry a leading minus sign. Structured YAML scalars
// are converted by tag; the !go tag passes Go literal text through
// verbatim (e.g. value: !go "'x'").
//
// # Duplicate keys
//
// When a key appears more than once in a map, the last occurrence wins.
package decl
