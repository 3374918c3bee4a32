// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every validation failure raised while building an order query is a
// StructuredError with code ErrCodeInvalidArgument. The failure category and
// the offending field travel in the error context so callers can branch on
// them without parsing messages:
//
//	err := errors.NewInvalidArgument(errors.CategoryInvalidDate, "createdFrom",
//	    "date must be YYYY-MM-DD or epoch seconds")
//
//	if errors.IsInvalidArgument(err) {
//	    switch errors.CategoryOf(err) {
//	    case errors.CategoryInvalidDate:
//	        // ...
//	    }
//	}
package errors
