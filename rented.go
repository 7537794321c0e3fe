// File: rented.go
// License: Apache-2.0
//
// Scoped wrapper pairing a rented array with its pool of origin.

package arraypool

// Rented owns exactly one borrowed array. Obtain it with RentScoped and
// release with defer so the array goes back on every exit path:
//
//	r := pool.RentScoped(256)
//	defer r.Release()
//	buf := r.Items()
type Rented[T any] struct {
	buf  []T
	pool *Pool[T]
}

// Items returns the borrowed slice. Nil after Release.
func (r *Rented[T]) Items() []T {
	return r.buf
}

// Release returns the array to the pool. Only the first call has an
// effect; the handle is inert afterwards.
func (r *Rented[T]) Release() {
	if r.pool == nil {
		return
	}
	r.pool.Return(r.buf, false)
	r.buf = nil
	r.pool = nil
}
