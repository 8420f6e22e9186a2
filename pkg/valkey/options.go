// Package valkey はValkeyクライアントの共通機能を提供する。
package valkey

import (
	"net"
	"strconv"
	"time"
)

// Options はValkeyクライアントの接続オプション。
type Options struct {
	Addr            string        // 接続先アドレス（host:port形式）
	Password        string        // 認証パスワード
	DB              int           // データベース番号
	ConnectTimeout  time.Duration // 接続タイムアウト
	ReadTimeout     time.Duration // 読み取りタイムアウト
	WriteTimeout    time.Duration // 書き込みタイムアウト
	PoolSize        int           // コネクションプールサイズ
	MinIdleConns    int           // 最小アイドルコネクション数
	MaxRetries      int           // コマンド再試行回数
	MinRetryBackoff time.Duration // 再試行間隔（最小）
	MaxRetryBackoff time.Duration // 再試行間隔（最大）
}

// DefaultOptions はデフォルトのOptionsを返す。
// タイムアウト: 接続3秒、読み取り2秒、書き込み2秒
// プール: サイズ10、最小アイドル2
// 再試行: 3回、100ms〜1秒
func DefaultOptions() *Options {
	return &Options{
		Addr:            "localhost:6379",
		Password:        "",
		DB:              0,
		ConnectTimeout:  3 * time.Second,
		ReadTimeout:     2 * time.Second,
		WriteTimeout:    2 * time.Second,
		PoolSize:        10,
		MinIdleConns:    2,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: 1 * time.Second,
	}
}

// WithAddr はアドレスを設定する。
func (o *Options) WithAddr(addr string) *Options {
	o.Addr = addr
	return o
}

// WithPassword はパスワードを設定する。
func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithDB はデータベース番号を設定する。
func (o *Options) WithDB(db int) *Options {
	o.DB = db
	return o
}

// WithTimeouts はタイムアウトを設定する。
func (o *Options) WithTimeouts(connect, read, write time.Duration) *Options {
	o.ConnectTimeout = connect
	o.ReadTimeout = read
	o.WriteTimeout = write
	return o
}

// WithPool はプール設定を変更する。
func (o *Options) WithPool(poolSize, minIdle int) *Options {
	o.PoolSize = poolSize
	o.MinIdleConns = minIdle
	return o
}

// WithRetries は再試行設定を変更する。
func (o *Options) WithRetries(maxRetries int, minBackoff, maxBackoff time.Duration) *Options {
	o.MaxRetries = maxRetries
	o.MinRetryBackoff = minBackoff
	o.MaxRetryBackoff = maxBackoff
	return o
}

// BuildAddr はホストとポートからアドレス文字列を生成する。
// IPv6アドレスは角括弧で囲む。
func BuildAddr(host, port string) string {
	return net.JoinHostPort(host, port)
}

// ParsePort はポート文字列を検証して数値で返す。
func ParsePort(port string) (int, bool) {
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return 0, false
	}
	return n, true
}
