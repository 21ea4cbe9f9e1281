package playfab

import "context"

// Future is the single-shot result of an asynchronous call.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx ends. A ctx ending does not cancel the call;
// cancel the context passed to Async for that.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Async runs method, any wrapper method such as client.Groups.CreateGroup, in its own goroutine.
//
//	f := playfab.Async(ctx, client.Groups.CreateGroup, &playfab.CreateGroupRequest{GroupName: "Clan"})
//	group, err := f.Await(ctx)
func Async[Req, Resp any](ctx context.Context, method func(context.Context, *Req, ...CallOption) (*Resp, error), req *Req, opts ...CallOption) *Future[*Resp] {
	f := &Future[*Resp]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = method(ctx, req, opts...)
	}()
	return f
}
