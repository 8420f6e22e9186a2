package radius

import "github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_dictionary.go -package=mocks

// Dictionary は属性辞書の読み取り専用検索を定義する。
// 見つからない場合はいずれもnilを返す。
type Dictionary interface {
	// FindAttr は標準属性を名前で検索する
	FindAttr(name string) *dict.Attr
	// FindVendorAttr はベンダー固有属性を名前で検索する
	FindVendorAttr(vendor *dict.Vendor, name string) *dict.Attr
	// FindAttrByID は属性をIDで検索する（vendorがnilなら標準属性）
	FindAttrByID(vendor *dict.Vendor, id uint8) *dict.Attr
	// FindVendor はベンダーを名前で検索する
	FindVendor(name string) *dict.Vendor
	// FindVendorByID はベンダーをIDで検索する
	FindVendorByID(id uint32) *dict.Vendor
	// FindValue は列挙値をシンボル名で検索する
	FindValue(attr *dict.Attr, name string) *dict.Value
	// FindValueByCode は列挙値を数値で検索する
	FindValueByCode(attr *dict.Attr, val uint32) *dict.Value
}
