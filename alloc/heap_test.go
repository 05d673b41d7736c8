package alloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocBudget(t *testing.T) {
	h := NewHeapAllocator(Options{MaxBytes: 10})

	b, err := h.Alloc(8)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 8, len(b))
	assert.Equal(t, int64(8), h.Used())
	assert.Equal(t, 1, h.Outstanding())

	// 超预算
	_, err = h.Alloc(4)
	assert.True(t, errors.Is(err, ErrExhausted))

	// 释放后恢复
	h.Free(b)
	assert.Equal(t, int64(0), h.Used())
	assert.Equal(t, 0, h.Outstanding())

	_, err = h.Alloc(4)
	assert.NoError(t, err)
}

func TestHeapAllocUnlimited(t *testing.T) {
	// MaxBytes小于等于0表示不限
	h := NewHeapAllocator(Options{MaxBytes: 0})
	_, err := h.Alloc(1 << 20)
	assert.NoError(t, err)
}

func TestHeapAllocOnRelease(t *testing.T) {
	released := 0
	h := NewHeapAllocator(Options{
		MaxBytes: 1024,
		OnRelease: func(n int) {
			released += n
		},
	})

	b, err := h.Alloc(16)
	if err != nil {
		t.Fatal(err)
	}
	h.Free(b)
	assert.Equal(t, 16, released)
}

func TestHeapAllocClear(t *testing.T) {
	h := NewHeapAllocator(Options{MaxBytes: 10})
	if _, err := h.Alloc(10); err != nil {
		t.Fatal(err)
	}
	h.Clear()
	assert.Equal(t, int64(0), h.Used())

	_, err := h.Alloc(10)
	assert.NoError(t, err)
}

func TestHeapAllocClosed(t *testing.T) {
	h := NewHeapAllocator(Options{MaxBytes: 1024})
	b, err := h.Alloc(8)
	if err != nil {
		t.Fatal(err)
	}

	h.Close()
	_, err = h.Alloc(8)
	assert.True(t, errors.Is(err, ErrClosed))

	// 关闭后释放仍然安全
	h.Free(b)
	assert.Equal(t, int64(0), h.Used())
}

func TestHeapAllocInvalidSize(t *testing.T) {
	h := NewHeapAllocator(Options{MaxBytes: 1024})
	_, err := h.Alloc(-1)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}
