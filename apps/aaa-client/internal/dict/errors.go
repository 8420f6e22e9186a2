package dict

import "errors"

// 辞書構築エラー
var (
	// ErrDuplicateAttr は同一IDまたは同一名の属性が登録済みの場合のエラー
	ErrDuplicateAttr = errors.New("duplicate attribute")

	// ErrDuplicateVendor は同一IDまたは同一名のベンダーが登録済みの場合のエラー
	ErrDuplicateVendor = errors.New("duplicate vendor")

	// ErrDuplicateValue は同一名の列挙値が登録済みの場合のエラー
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrNotEnumerable はinteger型以外に列挙値を登録しようとした場合のエラー
	ErrNotEnumerable = errors.New("values require integer attribute")

	// ErrInvalidType は未定義の属性値型が指定された場合のエラー
	ErrInvalidType = errors.New("invalid attribute type")
)
