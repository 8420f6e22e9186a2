package radius

import (
	"bytes"
	"encoding/binary"
	"net/netip"
	"time"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
)

// Value は属性値を表す。型はdict.Typeの5種のいずれかに限られる。
// ゼロ値は無効な値として扱う。
type Value struct {
	typ  dict.Type
	num  uint32  // integer, date
	ip   [4]byte // ipaddr（ネットワークバイトオーダーのまま保持）
	data []byte  // octets, string
}

// IntegerValue はinteger型の値を生成する
func IntegerValue(v uint32) Value {
	return Value{typ: dict.TypeInteger, num: v}
}

// DateValue はdate型の値を生成する（UNIX時刻秒）
func DateValue(t time.Time) Value {
	return Value{typ: dict.TypeDate, num: uint32(t.Unix())}
}

// OctetsValue はoctets型の値を生成する。bはコピーされる。
func OctetsValue(b []byte) Value {
	return Value{typ: dict.TypeOctets, data: bytes.Clone(b)}
}

// StringValue はstring型の値を生成する
func StringValue(s string) Value {
	return Value{typ: dict.TypeString, data: []byte(s)}
}

// IPAddrValue はipaddr型の値を生成する。ipはネットワークバイトオーダー。
func IPAddrValue(ip [4]byte) Value {
	return Value{typ: dict.TypeIPAddr, ip: ip}
}

// Type は値の型を返す
func (v Value) Type() dict.Type {
	return v.typ
}

// Integer はinteger型の値を返す
func (v Value) Integer() uint32 {
	return v.num
}

// Date はdate型の値を返す
func (v Value) Date() time.Time {
	return time.Unix(int64(v.num), 0)
}

// Octets はoctets/string型の値のバイト列を返す
func (v Value) Octets() []byte {
	return v.data
}

// Text はstring型の値を返す
func (v Value) Text() string {
	return string(v.data)
}

// IPAddr はipaddr型の値を返す
func (v Value) IPAddr() [4]byte {
	return v.ip
}

// Addr はipaddr型の値をnetip.Addrとして返す
func (v Value) Addr() netip.Addr {
	return netip.AddrFrom4(v.ip)
}

// Equal は型と値が等しいかを返す
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case dict.TypeInteger, dict.TypeDate:
		return v.num == o.num
	case dict.TypeIPAddr:
		return v.ip == o.ip
	default:
		return bytes.Equal(v.data, o.data)
	}
}

// size はワイヤー上の値のバイト数を返す
func (v Value) size() int {
	if n := v.typ.FixedSize(); n > 0 {
		return n
	}
	return len(v.data)
}

// put は値をbへ書き込む。bはsize()バイト以上あること。
func (v Value) put(b []byte) {
	switch v.typ {
	case dict.TypeInteger, dict.TypeDate:
		binary.BigEndian.PutUint32(b, v.num)
	case dict.TypeIPAddr:
		copy(b, v.ip[:])
	default:
		copy(b, v.data)
	}
}

// decodeValue はペイロードから型に応じた値を生成する。
// 固定長型で長さが一致しない場合はfalseを返す。
func decodeValue(typ dict.Type, payload []byte) (Value, bool) {
	switch typ {
	case dict.TypeInteger, dict.TypeDate:
		if len(payload) != 4 {
			return Value{}, false
		}
		return Value{typ: typ, num: binary.BigEndian.Uint32(payload)}, true
	case dict.TypeIPAddr:
		if len(payload) != 4 {
			return Value{}, false
		}
		return Value{typ: typ, ip: [4]byte(payload)}, true
	case dict.TypeOctets, dict.TypeString:
		return Value{typ: typ, data: bytes.Clone(payload)}, true
	default:
		return Value{}, false
	}
}
