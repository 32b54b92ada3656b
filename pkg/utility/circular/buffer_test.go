package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_PushGet(t *testing.T) {
	b := NewBuffer[int](5)
	for i := 0; i <= 8; i++ {
		b.Push(i)
	}

	c := NewBuffer[int](8)
	c.Push(0)
	c.Push(1)

	tests := []struct {
		name     string
		result   int
		expected int
	}{
		{"b.Get(0) == 8", b.Get(0), 8},
		{"b.Get(1) == 7", b.Get(1), 7},
		{"b.Get(2) == 6", b.Get(2), 6},
		{"b.Get(3) == 5", b.Get(3), 5},
		{"b.Get(4) == 4", b.Get(4), 4},
		{"c.Get(0) == 1", c.Get(0), 1},
		{"c.Get(1) == 0", c.Get(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("got %d, want %d", tt.result, tt.expected)
			}
		})
	}
}

func TestBuffer_ToSliceLifo(t *testing.T) {
	b := NewBuffer[int](5)
	assert.Empty(t, b.ToSliceLifo())

	b.Push(1)
	b.Push(2)
	assert.Equal(t, []int{2, 1}, b.ToSliceLifo())
	assert.False(t, b.IsFull())

	for i := 3; i <= 9; i++ {
		b.Push(i)
	}
	assert.True(t, b.IsFull())
	assert.Equal(t, 5, b.Size())
	assert.Equal(t, []int{9, 8, 7, 6, 5}, b.ToSliceLifo())
}

func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer[string](2)
	b.Push("a")
	b.Push("b")
	b.Clear()

	assert.True(t, b.IsEmpty())
	assert.Panics(t, func() { b.Get(0) })

	b.Push("c")
	assert.Equal(t, "c", b.Get(0))
	assert.Equal(t, 2, b.Capacity())
}

func TestBuffer_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewBuffer[int](0) })
}
