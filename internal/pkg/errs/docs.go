// Package errs provides the error types shared by the domain packages.
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for a one-line message and Unwrap() exposing the sentinel and the cause
//
// Rule violations that belong to a single type (an empty title, a zero quantity) are
// declared as sentinels next to that type instead.
package errs
