// Package match finds the closest known name to a misspelled one, for
// "did you mean" hints in diagnostics.
//
// Key functions:
//   - Normalize: folds case and separators before comparing
//   - Distance: computes edit distance between strings
//   - Suggest: picks the closest candidate within a tolerance
package match
