// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskUserName はUser-Nameをマスキングする。
// ローカル部のみ先頭2文字 + マスク + 末尾1文字とし、@以降のレルムは残す。
// 例: alice.smith@isp.example → al********h@isp.example
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskUserName(name string, enabled bool) string {
	if !enabled {
		return name
	}
	local, realm, found := strings.Cut(name, "@")
	masked := MaskPartial(local, 2, 1, '*')
	if !found {
		return masked
	}
	return masked + "@" + realm
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)

	// 先頭部分をコピー
	for i := 0; i < keepPrefix; i++ {
		result[i] = runes[i]
	}

	// 中間部分をマスク
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}

	// 末尾部分をコピー
	for i := length - keepSuffix; i < length; i++ {
		result[i] = runes[i]
	}

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// UserName はUser-Nameをマスキングする。
func (m *Masker) UserName(name string) string {
	return MaskUserName(name, m.enabled)
}
