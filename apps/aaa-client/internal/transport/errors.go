package transport

import "errors"

var (
	// ErrWouldBlock は受信可能なデータグラムがないことを表す。エラーではなく「後で再試行」の合図。
	ErrWouldBlock = errors.New("transport: would block")

	// ErrShortWrite は送信バイト数がパケット長に満たない場合のエラー
	ErrShortWrite = errors.New("transport: short write")

	// ErrConnRefused は送信先から到達不能通知（ICMP Port Unreachable）を受けた場合のエラー
	ErrConnRefused = errors.New("transport: connection refused")

	// ErrUnsupportedConn はソケットへ直接アクセスできない接続が渡された場合のエラー
	ErrUnsupportedConn = errors.New("transport: unsupported connection")
)
