// Package guard provides precondition checks for function arguments.
//
// Each guard returns nil when the precondition holds and an *ArgumentError
// otherwise. The error carries the name of the offending parameter and wraps
// one of ErrInvalidArgument, ErrOutOfRange or ErrNilArgument, so callers can
// classify it with errors.Is:
//
//	func NewClient(baseURL string, retries int) (*Client, error) {
//		if err := guard.RequireNonEmpty(baseURL, "baseURL"); err != nil {
//			return nil, err
//		}
//		if err := guard.RequireInRange(retries, 0, 10, "retries"); err != nil {
//			return nil, err
//		}
//		...
//	}
//
// A guard failure signals a broken contract on the caller's side, not a
// condition to retry.
package guard
