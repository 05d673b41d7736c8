package bytedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceViewNil(t *testing.T) {
	assert.True(t, NilSource.IsNil())
	assert.True(t, SourceView{}.IsNil())
	assert.True(t, FromBytes(nil).IsNil())

	// 空来源有效，与缺失的来源不同
	assert.False(t, FromString("").IsNil())
	assert.False(t, FromBytes([]byte{}).IsNil())
}

func TestSourceViewContentLen(t *testing.T) {
	// 没有结束标记时自然长度为区域长度
	v := FromString("Hello")
	assert.Equal(t, 5, v.RegionLen())
	assert.Equal(t, 5, v.ContentLen())

	// 有结束标记时止于标记
	v = FromBytes([]byte{'a', 'b', 0x00, 'c'})
	assert.Equal(t, 4, v.RegionLen())
	assert.Equal(t, 2, v.ContentLen())
	assert.Equal(t, "ab", v.String())

	// 区域以标记开头
	v = FromBytes([]byte{0x00, 'x'})
	assert.Equal(t, 0, v.ContentLen())
	assert.Equal(t, "", v.String())
}
