package radius

import (
	"encoding/binary"
	"fmt"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
)

// Attribute はパケット内の属性1つを表す。
// Vendorがnilなら標準属性、非nilならVendor-Specific（type 26）に包まれたベンダー属性。
// 記述子は辞書からの借用で、辞書はすべてのパケットより長く生存する。
type Attribute struct {
	Attr   *dict.Attr
	Vendor *dict.Vendor

	value Value
}

// Value は属性値を返す
func (a *Attribute) Value() Value {
	return a.value
}

// Len は属性値のワイヤー上のバイト数を返す
func (a *Attribute) Len() int {
	return a.value.size()
}

// IsVendor はベンダー属性かを返す
func (a *Attribute) IsVendor() bool {
	return a.Vendor != nil
}

// WireLen はVSAラッパーを含むワイヤー上の総バイト数を返す
func (a *Attribute) WireLen() int {
	return overhead(a.Vendor != nil) + a.Len()
}

// overhead は属性1つあたりのヘッダーバイト数を返す。
// 標準属性は2、VSAは外側ヘッダー2 + ベンダーID 4 + 内側ヘッダー2 の8。
func overhead(vendor bool) int {
	if vendor {
		return attrHeaderLen + vendorIDLen + attrHeaderLen
	}
	return attrHeaderLen
}

// maxValueLen は属性値として格納できる最大バイト数を返す
func maxValueLen(vendor bool) int {
	return maxAttrLen - overhead(vendor)
}

// encode は属性をbへ書き込み、書き込んだバイト数を返す。
// bはWireLen()バイト以上あること。
func (a *Attribute) encode(b []byte) int {
	n := a.Len()
	off := 0
	if a.Vendor != nil {
		b[0] = TypeVendorSpecific
		b[1] = byte(n + overhead(true))
		binary.BigEndian.PutUint32(b[2:6], a.Vendor.ID)
		off = attrHeaderLen + vendorIDLen
	}
	b[off] = a.Attr.ID
	b[off+1] = byte(n + attrHeaderLen)
	a.value.put(b[off+attrHeaderLen:])
	return off + attrHeaderLen + n
}

// readTLV はbの先頭からTLVを1つ読み取り、type、ペイロード、残りを返す。
// 長さの検証はすべてメモリアクセスより先に行う。
func readTLV(b []byte) (typ uint8, payload, rest []byte, err error) {
	if len(b) < attrHeaderLen {
		return 0, nil, nil, fmt.Errorf("%w: %w: truncated header (%d bytes left)", ErrMalformedPacket, ErrBadAttributeLength, len(b))
	}
	typ = b[0]
	n := int(b[1]) - attrHeaderLen
	if n < 0 {
		return 0, nil, nil, fmt.Errorf("%w: %w: type=%d length=%d", ErrMalformedPacket, ErrBadAttributeLength, typ, b[1])
	}
	if attrHeaderLen+n > len(b) {
		return 0, nil, nil, fmt.Errorf("%w: %w: type=%d length=%d exceeds %d bytes left", ErrMalformedPacket, ErrBadAttributeLength, typ, b[1], len(b))
	}
	return typ, b[attrHeaderLen : attrHeaderLen+n], b[attrHeaderLen+n:], nil
}
