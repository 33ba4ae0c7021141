// Package analyze loads the Go package a declaration file generates into.
//
// It uses golang.org/x/tools/go/packages to find the package name and
// import path of the output directory and collects the identifiers the
// package already declares, so generated names can be checked against
// them.
//
// Key types:
//   - Analyzer: loads packages, skipping the files litgen owns
//   - PackageInfo: name, import path and package-level declarations
package analyze
