package static_pool

// Handle identifies a slot in a Pool. Handles are 1-based: handle h refers
// to slot h-1. NoHandle (0) is never a valid handle.
type Handle uint

const NoHandle Handle = 0

// Pool is a fixed size pool of n items of type T. All storage is allocated
// once in New, after which Alloc, Free, Get and GetMut never allocate.
//
// Handles carry no generation, so a handle that was freed and then
// reallocated refers to the new occupant.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	items    []T
	occupied []bool
	len      int
}

func New[T any](n int) *Pool[T] {
	if n < 0 {
		panic("cannot create a pool with a negative number of slots")
	}
	return &Pool[T]{
		items:    make([]T, n),
		occupied: make([]bool, n),
	}
}

// Alloc takes the lowest indexed free slot, resets it to the zero value of T
// and returns its handle. The bool is false if the pool is full.
func (p *Pool[T]) Alloc() (Handle, bool) {
	for i, used := range p.occupied {
		if !used {
			p.occupied[i] = true
			var zero T
			p.items[i] = zero
			p.len++
			return Handle(i + 1), true
		}
	}
	return NoHandle, false
}

// Free releases the slot of h. Out of range handles and handles to free
// slots are ignored. The slot contents are left as is until the next Alloc.
func (p *Pool[T]) Free(h Handle) {
	if !p.Valid(h) {
		return
	}
	p.occupied[h-1] = false
	p.len--
}

// Get returns a copy of the item behind h.
func (p *Pool[T]) Get(h Handle) (T, bool) {
	if !p.Valid(h) {
		var zero T
		return zero, false
	}
	return p.items[h-1], true
}

// GetMut returns a pointer to the item behind h, or nil if h is not valid.
// The pointer must not be used after h has been freed.
func (p *Pool[T]) GetMut(h Handle) *T {
	if !p.Valid(h) {
		return nil
	}
	return &p.items[h-1]
}

// Valid reports whether h is in range and its slot is occupied.
func (p *Pool[T]) Valid(h Handle) bool {
	return h > 0 && uint(h) <= uint(len(p.occupied)) && p.occupied[h-1]
}

func (p *Pool[T]) Len() int {
	return p.len
}

func (p *Pool[T]) Cap() int {
	return len(p.items)
}
