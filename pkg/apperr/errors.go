// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// RADIUS交換関連エラー
var (
	// ErrNoSecret はRADIUSサーバーのShared Secretが解決できない場合のエラー
	ErrNoSecret = errors.New("RADIUS secret not configured")
	// ErrResponseTimeout は応答待ちが期限切れになった場合のエラー
	ErrResponseTimeout = errors.New("RADIUS response timeout")
	// ErrServerRefused はサーバーから到達不能（ICMP Port Unreachable等）が返された場合のエラー
	ErrServerRefused = errors.New("RADIUS server refused")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
)
