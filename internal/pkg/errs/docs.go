// Package errs provides the application's typed errors. Each type pairs a
// sentinel error (for classification with errors.Is) with a struct carrying
// the offending parameter name and an optional underlying cause:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be located by its identifier
//
// Constructors come in plain and WithCause variants; Unwrap returns the
// sentinel so callers can classify without depending on the concrete type.
package errs
