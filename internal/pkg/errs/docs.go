// Package errs provides the error types shared by the domain and adapters of
// the car-wash service.
//
// Each kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) with a
// struct carrying the offending parameter and an optional cause. The structs
// unwrap to their sentinel, so callers classify with errors.Is:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return http.StatusNotFound
//	}
//
// IsValidation groups the value errors that make up a validation failure.
package errs
