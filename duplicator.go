package bytedup

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/avast/retry-go"
	"github.com/sirupsen/logrus"

	"github.com/zuozikang/bytedup/alloc"
	re "github.com/zuozikang/bytedup/retry"
)

// 错误类型，调用方用 errors.Is 区分
var (
	ErrNilSource     = errors.New("bytedup: nil source")
	ErrAllocFailed   = errors.New("bytedup: allocation failed")
	ErrNegativeBound = errors.New("bytedup: negative bound")
	ErrClosed        = errors.New("bytedup: duplicator closed")
)

// Duplicator 是对底层分配器的封装，负责产出独立拥有的副本
type Duplicator struct {
	mu          sync.RWMutex
	allocator   alloc.Allocator
	opts        DuplicatorOptions
	dups        int64 // 成功次数
	failures    int64 // 失败次数
	bytesCopied int64 // 累计复制的内容字节数
	initialized int32 // 原子变量，标记是否已初始化
	closed      int32 // 原子变量，标记是否已关闭
}

// DuplicatorOptions opts
type DuplicatorOptions struct {
	AllocType alloc.AllocType // 类型 heap pool
	MaxBytes  int64           // 未释放副本的最大总字节数
	OnRelease func(n int)     // 释放回调
}

// DefaultDuplicatorOptions 返回默认值
func DefaultDuplicatorOptions() DuplicatorOptions {
	return DuplicatorOptions{
		AllocType: alloc.Heap,
		MaxBytes:  8 * 1024 * 1024, // 8MB
		OnRelease: nil,
	}
}

// NewDuplicator 返回最新的复制器实例
func NewDuplicator(opts DuplicatorOptions) *Duplicator {
	return &Duplicator{
		opts: opts,
	}
}

// WithAllocator 直接注入分配器，跳过惰性初始化（测试模拟分配失败用）
func (d *Duplicator) WithAllocator(a alloc.Allocator) *Duplicator {
	d.mu.Lock()
	d.allocator = a
	atomic.StoreInt32(&d.initialized, 1)
	d.mu.Unlock()
	return d
}

// 确保已经初始化，避免不必要的锁竞争
func (d *Duplicator) ensureInitialized() {
	if atomic.LoadInt32(&d.initialized) == 1 {
		return
	}

	// 双重检查锁定模式
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized == 0 {
		allocOpts := alloc.Options{
			MaxBytes:  d.opts.MaxBytes,
			OnRelease: d.opts.OnRelease,
		}

		d.allocator = alloc.NewAllocator(d.opts.AllocType, allocOpts)

		atomic.StoreInt32(&d.initialized, 1)

		logrus.Infof("Duplicator initialized with allocator %s, max bytes: %d", d.opts.AllocType, d.opts.MaxBytes)
	}
}

// Duplicate 复制整个内容：止于结束标记，区域内没有结束标记时止于区域末尾
func (d *Duplicator) Duplicate(src SourceView) (OwnedCopy, error) {
	return d.duplicate(src, src.RegionLen())
}

// DuplicateN 最多复制 n 个字节；n 为 0 时返回只含结束标记的单字节缓冲
func (d *Duplicator) DuplicateN(src SourceView, n int) (OwnedCopy, error) {
	if n < 0 {
		atomic.AddInt64(&d.failures, 1)
		return OwnedCopy{}, fmt.Errorf("%w: %d", ErrNegativeBound, n)
	}
	return d.duplicate(src, n)
}

// duplicate 有界复制，bound 已保证非负
func (d *Duplicator) duplicate(src SourceView, bound int) (OwnedCopy, error) {
	if atomic.LoadInt32(&d.closed) == 1 {
		return OwnedCopy{}, ErrClosed
	}

	// 先判空，不做任何测量和分配
	if src.IsNil() {
		atomic.AddInt64(&d.failures, 1)
		return OwnedCopy{}, ErrNilSource
	}

	d.ensureInitialized()

	d.mu.RLock()
	allocator := d.allocator
	d.mu.RUnlock()
	if allocator == nil {
		return OwnedCopy{}, ErrClosed
	}

	if bound > len(src.b) {
		bound = len(src.b)
	}

	// 在界内扫描结束标记，先于界出现时止于标记
	region := src.b[:bound]
	length := bound
	if i := bytes.IndexByte(region, Sentinel); i >= 0 {
		length = i
	}

	buf, err := allocator.Alloc(length + 1)
	if err != nil {
		atomic.AddInt64(&d.failures, 1)
		logrus.Warnf("Failed to allocate %d bytes: %v", length+1, err)
		return OwnedCopy{}, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}

	copy(buf, region[:length])
	buf[length] = Sentinel

	atomic.AddInt64(&d.dups, 1)
	atomic.AddInt64(&d.bytesCopied, int64(length))

	return OwnedCopy{b: buf[:length+1], allocator: allocator}, nil
}

// DuplicateWithRetry 分配失败时按配置重试；空来源不重试
func (d *Duplicator) DuplicateWithRetry(src SourceView, cfg *re.RetryConfig) (OwnedCopy, error) {
	if cfg == nil {
		cfg = re.NewRetryConfig()
	}

	retryIf := cfg.RetryIfFn
	if retryIf == nil {
		retryIf = func(err error) bool {
			return errors.Is(err, ErrAllocFailed)
		}
	}

	var out OwnedCopy
	err := retry.Do(
		func() error {
			var err error
			out, err = d.Duplicate(src)
			return err
		},
		retry.Attempts(cfg.MaxAttempts),
		retry.Delay(cfg.Delay),
		retry.RetryIf(retryIf),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return OwnedCopy{}, err
	}
	return out, nil
}

// Stats 返回统计信息
func (d *Duplicator) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"initialized":  atomic.LoadInt32(&d.initialized) == 1,
		"closed":       atomic.LoadInt32(&d.closed) == 1,
		"dups":         atomic.LoadInt64(&d.dups),
		"failures":     atomic.LoadInt64(&d.failures),
		"bytes_copied": atomic.LoadInt64(&d.bytesCopied),
	}

	// 已初始化
	if atomic.LoadInt32(&d.initialized) == 1 {
		d.mu.RLock()
		if d.allocator != nil {
			stats["used_bytes"] = d.allocator.Used()
			stats["outstanding"] = d.allocator.Outstanding()
		}
		d.mu.RUnlock()
	}

	return stats
}

// Close 关闭复制器，释放底层分配器；已发出的副本仍归调用方所有
func (d *Duplicator) Close() {
	if !atomic.CompareAndSwapInt32(&d.closed, 0, 1) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.allocator != nil {
		d.allocator.Close()
		d.allocator = nil
	}
	atomic.StoreInt32(&d.initialized, 0)

	logrus.Debugf("Duplicator closed, dups: %d, failures: %d", atomic.LoadInt64(&d.dups), atomic.LoadInt64(&d.failures))
}
