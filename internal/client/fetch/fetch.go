// Package fetch factors out the per-page data lifecycle every screen
// repeats: run a request, track loading, keep either the data or the
// error, refetch after mutations. No caching, no retries; a failure is
// terminal until the user triggers the action again.
package fetch

import "context"

// State holds one screen's view of one request.
type State[T any] struct {
	fn func(context.Context) (T, error)

	Data      T
	Err       error
	IsLoading bool
}

// New wraps a request function. Nothing runs until Load.
func New[T any](fn func(context.Context) (T, error)) *State[T] {
	return &State[T]{fn: fn}
}

// Load runs the request. IsLoading clears on success and failure alike,
// and a failure zeroes Data so screens never render stale values.
func (s *State[T]) Load(ctx context.Context) error {
	s.IsLoading = true
	s.Err = nil
	defer func() { s.IsLoading = false }()

	data, err := s.fn(ctx)
	if err != nil {
		var zero T
		s.Data = zero
		s.Err = err
		return err
	}
	s.Data = data
	return nil
}

// Refetch re-runs the request; screens call it after a mutation.
func (s *State[T]) Refetch(ctx context.Context) error {
	return s.Load(ctx)
}
