package shooter

import "iter"

// Item is the constraint for pooled entities.
type Item interface {
	Active() bool
}

// Pool is a fixed-capacity collection of same-kind entities, reused
// instead of allocated and freed each frame. All slots are created once
// at construction; capacity is a hard upper bound on concurrently
// active instances of that kind.
type Pool[T Item] struct {
	slots []T
}

// NewPool creates a pool of size slots, each built by newItem.
func NewPool[T Item](size int, newItem func() T) *Pool[T] {
	p := &Pool[T]{slots: make([]T, size)}
	for i := range p.slots {
		p.slots[i] = newItem()
	}
	return p
}

// Size returns the pool capacity.
func (p *Pool[T]) Size() int {
	return len(p.slots)
}

// Slots returns the underlying slots in pool order, active or not.
func (p *Pool[T]) Slots() []T {
	return p.slots
}

// Acquire returns the first inactive slot. If every slot is active it
// recycles slot 0 regardless of its state. The forced recycle is a
// deliberate overflow policy, not an error: the caller overwrites the
// slot's state, which can visibly teleport an in-flight entity back
// into reuse at small pool sizes.
func (p *Pool[T]) Acquire() T {
	for _, item := range p.slots {
		if !item.Active() {
			return item
		}
	}
	return p.slots[0]
}

// TryAcquire returns the first inactive slot, or ok=false when the pool
// is saturated. Unlike Acquire it never recycles an active slot.
func (p *Pool[T]) TryAcquire() (T, bool) {
	for _, item := range p.slots {
		if !item.Active() {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ActiveSeq yields the currently active slots in pool order. The
// sequence is recomputed from pool membership on every call rather than
// tracked separately; pools are small and fixed, so the scan is cheap.
func (p *Pool[T]) ActiveSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.slots {
			if !item.Active() {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// CountActive returns the number of active slots.
func (p *Pool[T]) CountActive() int {
	count := 0
	for _, item := range p.slots {
		if item.Active() {
			count++
		}
	}
	return count
}
