package circular

// Buffer keeps the last Capacity values pushed. Index 0 is the latest value.
type Buffer[T any] struct {
	capacity int

	head int
	size int
	data []T
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("capacity must > 0")
	}
	return &Buffer[T]{
		capacity: capacity,
		data:     make([]T, capacity),
	}
}

func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

func (b *Buffer[T]) Size() int {
	return b.size
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

func (b *Buffer[T]) IsFull() bool {
	return b.size == b.capacity
}

func (b *Buffer[T]) Clear() {
	b.head = 0
	b.size = 0
}

func (b *Buffer[T]) Push(value T) {
	b.data[b.head] = value
	b.head = (b.head + 1) % b.capacity
	if b.size < b.capacity {
		b.size++
	}
}

func (b *Buffer[T]) Get(idx int) T {
	if idx < 0 || idx >= b.size {
		panic("index out of range")
	}
	return b.data[(b.head-1-idx+b.capacity)%b.capacity]
}

// ToSliceLifo copies the buffer newest first.
func (b *Buffer[T]) ToSliceLifo() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.Get(i)
	}
	return out
}
