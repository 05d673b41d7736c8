package alloc

import "errors"

// 分配失败的错误类型
var (
	ErrExhausted   = errors.New("alloc: byte budget exhausted")
	ErrInvalidSize = errors.New("alloc: invalid size")
	ErrClosed      = errors.New("alloc: allocator closed")
)

// Allocator is the interface that wraps the basic Alloc and Free methods.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
	Used() int64
	Outstanding() int
	Clear()
	Close()
}

// AllocType is the type of allocator
type AllocType string

const (
	Heap AllocType = "heap"
	Pool AllocType = "pool"
)

// Options is the options for allocator
type Options struct {
	MaxBytes  int64       // 未释放缓冲的最大总字节数，小于等于0表示不限
	OnRelease func(n int) // 释放回调
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MaxBytes:  1024 * 8, // 8KB
		OnRelease: nil,      // nil
	}
}

// NewOptions returns the default options
func NewOptions() Options {
	return DefaultOptions()
}

// NewAllocator returns a new Allocator
func NewAllocator(allocType AllocType, opts Options) Allocator {
	switch allocType {
	case Heap:
		return NewHeapAllocator(opts)
	case Pool:
		return NewPoolAllocator(opts)
	default:
		return NewHeapAllocator(opts)
	}
}
