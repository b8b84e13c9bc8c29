package manager

import "context"

type result[T any] struct {
	value T
	err   error
}

func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		value, err := fn()
		ch <- result[T]{value: value, err: err}
	}()
	return ch
}

// join waits for both calls. An error from mandatory fails the join;
// an error from bestEffort is handed to fallback, whose value is used instead.
func join[M, B any](
	ctx context.Context,
	mandatory func() (M, error),
	bestEffort func() (B, error),
	fallback func(error) B,
) (M, B, error) {
	var (
		m M
		b B
	)

	mCh := async(mandatory)
	bCh := async(bestEffort)

	for mCh != nil || bCh != nil {
		select {
		case <-ctx.Done():
			return m, b, ctx.Err()
		case res := <-mCh:
			if res.err != nil {
				var zero M
				return zero, b, res.err
			}
			m = res.value
			mCh = nil
		case res := <-bCh:
			if res.err != nil {
				b = fallback(res.err)
			} else {
				b = res.value
			}
			bCh = nil
		}
	}

	return m, b, nil
}
