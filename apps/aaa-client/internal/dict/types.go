// Package dict はRADIUS属性辞書（メモリ上）を提供する。
// 起動時に構築し、以降は読み取り専用として扱う。
package dict

import "fmt"

// Type は属性値の型を表す
type Type uint8

// 属性値型（RFC 2865 5章）
const (
	TypeInteger Type = iota + 1
	TypeOctets
	TypeString
	TypeIPAddr
	TypeDate
)

// String は型名を返す
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeOctets:
		return "octets"
	case TypeString:
		return "string"
	case TypeIPAddr:
		return "ipaddr"
	case TypeDate:
		return "date"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// FixedSize は固定長型のワイヤー上のバイト数を返す。可変長型は0。
func (t Type) FixedSize() int {
	switch t {
	case TypeInteger, TypeIPAddr, TypeDate:
		return 4
	default:
		return 0
	}
}

// Value は列挙型属性のシンボル名と数値の対応を表す
type Value struct {
	Name string
	Val  uint32
}

// Attr は属性記述子を表す
type Attr struct {
	ID     uint8
	Name   string
	Type   Type
	Values []*Value // 定義順
}

// Vendor はベンダー記述子を表す
type Vendor struct {
	ID   uint32
	Name string

	attrs  map[uint8]*Attr
	byName map[string]*Attr
}
