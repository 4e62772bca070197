package entity

// Pool is a fixed-capacity arena of entities reused by toggling Life.
// Slots are allocated once; claiming a slot never allocates.
type Pool[T Actor] struct {
	slots []T
}

// NewPool allocates size slots using newSlot.
func NewPool[T Actor](size int, newSlot func() T) *Pool[T] {
	slots := make([]T, size)
	for i := range slots {
		slots[i] = newSlot()
	}
	return &Pool[T]{slots: slots}
}

// Free returns the first inactive slot.
func (p *Pool[T]) Free() (T, bool) {
	for _, s := range p.slots {
		if !s.Alive() {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// FreePair scans by strides of two and returns the first pair whose slots
// are both inactive. A trailing odd slot never forms a pair.
func (p *Pool[T]) FreePair() (T, T, bool) {
	for i := 0; i+1 < len(p.slots); i += 2 {
		if !p.slots[i].Alive() && !p.slots[i+1].Alive() {
			return p.slots[i], p.slots[i+1], true
		}
	}
	var zero T
	return zero, zero, false
}

// Update ticks every slot in slot order. Inactive slots do nothing.
func (p *Pool[T]) Update(f Frame) {
	for _, s := range p.slots {
		s.Update(f)
	}
}

// Each calls fn for every live slot.
func (p *Pool[T]) Each(fn func(T)) {
	for _, s := range p.slots {
		if s.Alive() {
			fn(s)
		}
	}
}

func (p *Pool[T]) At(i int) T {
	return p.slots[i]
}

func (p *Pool[T]) Len() int {
	return len(p.slots)
}

// Alive counts active slots.
func (p *Pool[T]) Alive() int {
	n := 0
	for _, s := range p.slots {
		if s.Alive() {
			n++
		}
	}
	return n
}
