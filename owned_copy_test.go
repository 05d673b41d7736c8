package bytedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zuozikang/bytedup/alloc"
)

func TestOwnedCopyRelease(t *testing.T) {
	a := alloc.NewHeapAllocator(alloc.Options{MaxBytes: 1024})
	d := NewDuplicator(DefaultDuplicatorOptions()).WithAllocator(a)
	defer d.Close()

	cp, err := d.Duplicate(FromString("Hello"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(6), a.Used())
	assert.Equal(t, 1, a.Outstanding())

	cp.Release()
	assert.Equal(t, int64(0), a.Used())
	assert.Equal(t, 0, a.Outstanding())

	// 重复释放无效果
	cp.Release()
	assert.Equal(t, int64(0), a.Used())

	// 释放后不可再读到内容
	assert.Equal(t, 0, cp.Size())
	assert.Nil(t, cp.Bytes())
}

func TestOwnedCopyZeroValue(t *testing.T) {
	var cp OwnedCopy
	assert.Equal(t, 0, cp.Len())
	assert.Equal(t, 0, cp.Size())
	assert.Nil(t, cp.Bytes())
	assert.Equal(t, "", cp.String())
	cp.Release() // 零值释放安全
}

func TestOwnedCopyClone(t *testing.T) {
	d := NewDuplicator(DefaultDuplicatorOptions())
	defer d.Close()

	cp, err := d.Duplicate(FromString("abc"))
	if err != nil {
		t.Fatal(err)
	}

	c := cp.Clone()
	assert.Equal(t, []byte("abc"), c)

	// 克隆和副本互不共享存储
	c[0] = 'x'
	assert.Equal(t, "abc", cp.String())
}
