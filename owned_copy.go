package bytedup

import "github.com/zuozikang/bytedup/alloc"

// OwnedCopy 调用方独占的副本，内容之后恰好跟一个结束标记字节
type OwnedCopy struct {
	b         []byte // 含末尾结束标记
	allocator alloc.Allocator
}

// Len 返回内容长度，不含结束标记
func (c OwnedCopy) Len() int {
	if len(c.b) == 0 {
		return 0
	}
	return len(c.b) - 1
}

// Size 返回缓冲区总长度，含结束标记
func (c OwnedCopy) Size() int {
	return len(c.b)
}

// Bytes 返回内容字节，调用方可以修改
func (c OwnedCopy) Bytes() []byte {
	if len(c.b) == 0 {
		return nil
	}
	return c.b[:len(c.b)-1]
}

// Raw 返回含结束标记的底层缓冲区
func (c OwnedCopy) Raw() []byte {
	return c.b
}

// String 返回内容字符串
func (c OwnedCopy) String() string {
	return string(c.Bytes())
}

// Clone 返回内容的独立副本
func (c OwnedCopy) Clone() []byte {
	return cloneBytes(c.Bytes())
}

// Release 将缓冲区交还给分配器，之后副本不可再使用；重复调用无效果
func (c *OwnedCopy) Release() {
	if c.b == nil {
		return
	}
	if c.allocator != nil {
		c.allocator.Free(c.b)
	}
	c.b = nil
	c.allocator = nil
}

// cloneBytes 返回字节的副本
func cloneBytes(b []byte) []byte {
	n := make([]byte, len(b))
	copy(n, b)
	return n
}
