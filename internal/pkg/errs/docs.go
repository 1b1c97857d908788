// Package errs provides the error families shared by the grubdash domain and
// its adapters.
//
// Each family has a sentinel (ErrObjectNotFound, ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueMismatch) and a struct type
// carrying the offending parameter. The structs unwrap to their sentinel, so
// callers classify failures with errors.Is and inspect details with errors.As.
package errs
