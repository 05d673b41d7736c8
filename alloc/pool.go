package alloc

import "sync"

// 最小的大小等级，分配按2的幂向上取整
const minClass = 16

// PoolAllocator recycles buffers through per-class sync.Pools.
type PoolAllocator struct {
	mu          sync.Mutex         // 锁
	pools       map[int]*sync.Pool // 大小等级到池的映射
	maxBytes    int64              // 最大允许字节数
	usedBytes   int64              // 已使用字节数，按等级大小计
	outstanding int                // 未释放缓冲数量
	onRelease   func(n int)        // 释放回调
	closed      bool               // 是否已关闭
}

// NewPoolAllocator returns a new pool allocator.
func NewPoolAllocator(opts Options) *PoolAllocator {
	return &PoolAllocator{
		pools:     make(map[int]*sync.Pool),
		maxBytes:  opts.MaxBytes,
		onRelease: opts.OnRelease,
	}
}

// classFor 返回不小于n的大小等级
func classFor(n int) int {
	c := minClass
	for c < n {
		c <<= 1
	}
	return c
}

// isClass 判断容量是否为合法的大小等级
func isClass(c int) bool {
	return c >= minClass && c&(c-1) == 0
}

// Alloc returns a zeroed buffer of length n, capacity rounded to its class.
func (p *PoolAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}

	class := classFor(n)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	// 预算按等级大小计，与Free对称
	if p.maxBytes > 0 && p.usedBytes+int64(class) > p.maxBytes {
		p.mu.Unlock()
		return nil, ErrExhausted
	}
	p.usedBytes += int64(class)
	p.outstanding++
	pool := p.poolFor(class)
	p.mu.Unlock()

	buf := pool.Get().([]byte)
	buf = buf[:class]
	// 复用的缓冲要清零，保证和新分配一致
	for i := range buf {
		buf[i] = 0
	}
	return buf[:n], nil
}

// Free returns a buffer to its class pool.
func (p *PoolAllocator) Free(b []byte) {
	if b == nil {
		return
	}

	class := cap(b)

	p.mu.Lock()
	p.usedBytes -= int64(class)
	if p.usedBytes < 0 {
		p.usedBytes = 0
	}
	if p.outstanding > 0 {
		p.outstanding--
	}
	var pool *sync.Pool
	if isClass(class) {
		pool = p.poolFor(class)
	}
	onRelease := p.onRelease
	p.mu.Unlock()

	if pool != nil {
		pool.Put(b[:class])
	}
	if onRelease != nil {
		onRelease(class)
	}
}

// Used returns the bytes currently charged against the budget.
func (p *PoolAllocator) Used() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.usedBytes
}

// Outstanding returns the number of buffers not yet freed.
func (p *PoolAllocator) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outstanding
}

// Clear drops all pools and resets the budget accounting.
func (p *PoolAllocator) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pools = make(map[int]*sync.Pool)
	p.usedBytes = 0
	p.outstanding = 0
}

// Close marks the allocator closed; later Alloc calls fail, Free stays safe.
func (p *PoolAllocator) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.pools = make(map[int]*sync.Pool)
}

// poolFor 返回等级对应的池，调用方需持有锁
func (p *PoolAllocator) poolFor(class int) *sync.Pool {
	pool, ok := p.pools[class]
	if !ok {
		pool = &sync.Pool{
			New: func() interface{} {
				return make([]byte, class)
			},
		}
		p.pools[class] = pool
	}
	return pool
}
