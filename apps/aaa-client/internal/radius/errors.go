package radius

import "errors"

// リソースエラー
var (
	// ErrOutOfMemory はワイヤーバッファを確保できない場合のエラー
	ErrOutOfMemory = errors.New("radius: out of memory")
)

// 辞書解決エラー（構築時）
var (
	// ErrUnknownAttribute は属性名が辞書に存在しない場合のエラー
	ErrUnknownAttribute = errors.New("radius: unknown attribute")

	// ErrUnknownVendor はベンダー名が辞書に存在しない場合のエラー
	ErrUnknownVendor = errors.New("radius: unknown vendor")

	// ErrUnknownValue は列挙値のシンボルが辞書に存在しない場合のエラー
	ErrUnknownValue = errors.New("radius: unknown value")

	// ErrAttributeNotFound は変更対象の属性がパケットに存在しない場合のエラー
	ErrAttributeNotFound = errors.New("radius: attribute not found")

	// ErrTypeMismatch は操作と属性値型が一致しない場合のエラー
	ErrTypeMismatch = errors.New("radius: attribute type mismatch")
)

// 容量エラー
var (
	// ErrCapacityExceeded はパケット長が上限を超える場合のエラー
	ErrCapacityExceeded = errors.New("radius: packet length limit exceeded")

	// ErrValueTooLong は属性値が1属性に収まらない場合のエラー
	ErrValueTooLong = errors.New("radius: attribute value too long")
)

// 受信データ不正エラー。いずれもErrMalformedPacketをラップする。
var (
	// ErrMalformedPacket は受信パケットを破棄したことを表す
	ErrMalformedPacket = errors.New("radius: malformed packet")

	// ErrShortPacket はヘッダー長に満たないパケットのエラー
	ErrShortPacket = errors.New("short packet")

	// ErrLengthMismatch はLengthフィールドが受信バイト数と矛盾する場合のエラー
	ErrLengthMismatch = errors.New("length field mismatch")

	// ErrBadAttributeLength は属性長が不正な場合のエラー
	ErrBadAttributeLength = errors.New("bad attribute length")
)

// 構築・送信エラー
var (
	// ErrNotBuilt はBuild前のパケットを送信しようとした場合のエラー
	ErrNotBuilt = errors.New("radius: packet not built")

	// ErrLengthCorrupted は属性列とパケット長の累計が一致しない場合のエラー
	ErrLengthCorrupted = errors.New("radius: attribute list does not match packet length")

	// ErrBadAuthenticator は応答のResponse Authenticator検証に失敗した場合のエラー
	ErrBadAuthenticator = errors.New("radius: response authenticator mismatch")
)
