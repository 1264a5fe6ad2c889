// Package bufpool is the buffer pool codec.Writer borrows its scratch
// buffers from (codec.Reader uses no pool). It is backed by sync.Pool, the same
// pattern parallel/pool/dynamic.go uses for task executors — pooling
// []byte slices instead of goroutine-side state.
package bufpool

import "sync"

// Pool rents and returns []byte buffers bucketed by a rounded-up capacity,
// so a given size class reuses the same underlying arrays instead of
// thrashing the allocator on every frame.
type Pool struct {
	pools sync.Map // int(sizeClass) -> *sync.Pool
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{}
}

func sizeClass(n int) int {
	c := 64
	for c < n {
		c <<= 1
	}
	return c
}

func (p *Pool) poolFor(class int) *sync.Pool {
	if v, ok := p.pools.Load(class); ok {
		return v.(*sync.Pool)
	}
	sp := &sync.Pool{New: func() interface{} {
		b := make([]byte, class)
		return &b
	}}
	actual, _ := p.pools.LoadOrStore(class, sp)
	return actual.(*sync.Pool)
}

// Rent returns a buffer with length n; its capacity may exceed n. The slice
// is not zeroed — callers must overwrite every byte they read.
func (p *Pool) Rent(n int) []byte {
	class := sizeClass(n)
	b := *(p.poolFor(class).Get().(*[]byte))
	return b[:n]
}

// Return releases a buffer previously obtained from Rent back to its size
// class. Passing a buffer not obtained from this Pool, or returning the
// same buffer twice, corrupts the pool.
func (p *Pool) Return(b []byte) {
	class := sizeClass(cap(b))
	full := b[:cap(b)]
	p.poolFor(class).Put(&full)
}
