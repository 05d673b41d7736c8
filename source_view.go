package bytedup

import "bytes"

// Sentinel 内容结束标记字节
const Sentinel byte = 0x00

// SourceView 只读的字节视图，复制的来源；零值表示缺失的来源
type SourceView struct {
	b       []byte
	present bool
}

// NilSource 缺失的来源
var NilSource = SourceView{}

// FromBytes 从字节区域构造视图；nil切片视为缺失的来源
func FromBytes(b []byte) SourceView {
	if b == nil {
		return NilSource
	}
	return SourceView{b: b, present: true}
}

// FromString 从字符串构造视图
func FromString(s string) SourceView {
	return SourceView{b: []byte(s), present: true}
}

// IsNil 是否为缺失的来源
func (v SourceView) IsNil() bool {
	return !v.present
}

// RegionLen 返回整个区域的字节长度
func (v SourceView) RegionLen() int {
	return len(v.b)
}

// ContentLen 返回自然长度：第一个结束标记之前的字节数，区域内没有结束标记时为区域长度
func (v SourceView) ContentLen() int {
	if i := bytes.IndexByte(v.b, Sentinel); i >= 0 {
		return i
	}
	return len(v.b)
}

// String 返回内容字符串
func (v SourceView) String() string {
	return string(v.b[:v.ContentLen()])
}
