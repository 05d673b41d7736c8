package alloc

import "sync"

// HeapAllocator is a make-backed allocator with a byte budget.
type HeapAllocator struct {
	mu          sync.Mutex  // 锁
	maxBytes    int64       // 最大允许字节数
	usedBytes   int64       // 已使用字节数
	outstanding int         // 未释放缓冲数量
	onRelease   func(n int) // 释放回调，某个缓冲被交还时调用
	closed      bool        // 是否已关闭
}

// NewHeapAllocator returns a new heap allocator.
func NewHeapAllocator(opts Options) *HeapAllocator {
	return &HeapAllocator{
		maxBytes:  opts.MaxBytes,
		onRelease: opts.OnRelease,
	}
}

// Alloc returns a zeroed buffer of exactly n bytes.
func (h *HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}
	// 超预算
	if h.maxBytes > 0 && h.usedBytes+int64(n) > h.maxBytes {
		return nil, ErrExhausted
	}

	h.usedBytes += int64(n)
	h.outstanding++
	return make([]byte, n), nil
}

// Free returns a buffer's bytes to the budget.
func (h *HeapAllocator) Free(b []byte) {
	if b == nil {
		return
	}

	h.mu.Lock()
	h.usedBytes -= int64(cap(b))
	if h.usedBytes < 0 {
		h.usedBytes = 0
	}
	if h.outstanding > 0 {
		h.outstanding--
	}
	onRelease := h.onRelease
	h.mu.Unlock()

	if onRelease != nil {
		onRelease(cap(b))
	}
}

// Used returns the bytes currently charged against the budget.
func (h *HeapAllocator) Used() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.usedBytes
}

// Outstanding returns the number of buffers not yet freed.
func (h *HeapAllocator) Outstanding() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.outstanding
}

// Clear resets the budget accounting.
func (h *HeapAllocator) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.usedBytes = 0
	h.outstanding = 0
}

// Close marks the allocator closed; later Alloc calls fail, Free stays safe.
func (h *HeapAllocator) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
}
