// Package attrerr defines the four error kinds a resolve can fail with:
// dependency cycles, declared reads with no resolved value, resolving a
// never-registered target directly, and transforms that reject their own
// input or dependencies.
//
// Each kind is a sentinel error (ErrCycle, ErrMissingRead, ErrMissingSource,
// ErrInvalidTransform) plus a struct carrying the offending detail and
// wrapping the sentinel via Unwrap, so callers use errors.Is against the
// sentinel and errors.As to recover the detail.
package attrerr
