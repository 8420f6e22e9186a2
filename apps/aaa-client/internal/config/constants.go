package config

import "time"

// RADIUS既定ポート（RFC 2865/2866）
const (
	DefaultAuthPort = "1812"
	DefaultAcctPort = "1813"
)

// Secret解決（Valkey参照）のタイムアウト
const (
	SecretLookupTimeout = 1 * time.Second
)

// Valkey接続設定。Secret参照の数回だけ使うため、プールは最小限にしアイドル接続を保持しない。
const (
	ValkeyConnectTimeout  = 1 * time.Second
	ValkeyReadTimeout     = 1 * time.Second
	ValkeyWriteTimeout    = 1 * time.Second
	ValkeyPoolSize        = 2
	ValkeyMinIdleConns    = 0
	ValkeyMaxRetries      = 1
	ValkeyMinRetryBackoff = 100 * time.Millisecond
	ValkeyMaxRetryBackoff = 500 * time.Millisecond
)

// パケット長の許容範囲。上限はLengthフィールド（16bit）による。
const (
	MinPacketLength = 20
	MaxPacketLength = 65535
)
