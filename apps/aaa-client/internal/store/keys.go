package store

// Valkeyキープレフィックス
const (
	KeyPrefixServer = "server:" // RADIUSサーバー設定（Hash）
)

// フィールド名
const (
	FieldSecret = "secret"
	FieldName   = "name"
	FieldVendor = "vendor"
)
