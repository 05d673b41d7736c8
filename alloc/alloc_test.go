package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAllocator(t *testing.T) {
	a := NewAllocator(Heap, DefaultOptions())
	_, ok := a.(*HeapAllocator)
	assert.True(t, ok)

	a = NewAllocator(Pool, DefaultOptions())
	_, ok = a.(*PoolAllocator)
	assert.True(t, ok)

	// 未知类型回退到heap
	a = NewAllocator("unknown", DefaultOptions())
	_, ok = a.(*HeapAllocator)
	assert.True(t, ok)
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, minClass, classFor(0))
	assert.Equal(t, minClass, classFor(1))
	assert.Equal(t, minClass, classFor(16))
	assert.Equal(t, 32, classFor(17))
	assert.Equal(t, 128, classFor(100))
}
