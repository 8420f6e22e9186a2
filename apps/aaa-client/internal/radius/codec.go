// Package radius はRADIUSクライアント側のパケット符号化・復号と属性モデルを提供する。
//
// パケットはCodec.NewPacketで生成し、Add系/Change系で属性を積み上げ、
// Codec.Buildでワイヤー形式へ直列化する。受信側はCodec.Parseで
// 属性列へ復号する。パケットは単一のセッション文脈からのみ操作され、
// 内部でロックは取らない。
package radius

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/pppoe-aaa-client/pkg/logging"
)

// Config はCodecの設定を保持する
type Config struct {
	Dictionary   Dictionary  // 属性辞書（必須）
	MaxLength    int         // パケット長上限（0ならDefaultMaxLength）
	Pool         *BufferPool // ワイヤーバッファプール（nilなら新規生成）
	BufferLimit  int         // Pool未指定時の同時貸し出し上限（0ならDefaultBufferLimit）
	Verbose      bool        // 送受信パケットのダンプを出力する
	MaskUserName bool        // ダンプ中のUser-Nameをマスキングする
}

// Codec はパケットの生成・符号化・復号を行う
type Codec struct {
	dict    Dictionary
	maxLen  int
	pool    *BufferPool
	verbose bool
	masker  *logging.Masker
}

// NewCodec は新しいCodecを生成する
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Dictionary == nil {
		return nil, errors.New("radius: dictionary is required")
	}
	maxLen := cfg.MaxLength
	if maxLen == 0 {
		maxLen = DefaultMaxLength
	}
	// Lengthフィールドは16bit
	if maxLen < HeaderLen || maxLen > 0xffff {
		return nil, fmt.Errorf("radius: invalid max length %d", maxLen)
	}
	pool := cfg.Pool
	if pool == nil {
		limit := cfg.BufferLimit
		if limit == 0 {
			limit = DefaultBufferLimit
		}
		pool = NewBufferPool(maxLen, limit)
	}
	if pool.Size() < maxLen {
		return nil, fmt.Errorf("radius: buffer size %d smaller than max length %d", pool.Size(), maxLen)
	}
	return &Codec{
		dict:    cfg.Dictionary,
		maxLen:  maxLen,
		pool:    pool,
		verbose: cfg.Verbose,
		masker:  logging.NewMasker(cfg.MaskUserName),
	}, nil
}

// MaxLength はパケット長上限を返す
func (c *Codec) MaxLength() int {
	return c.maxLen
}

// Pool はワイヤーバッファプールを返す
func (c *Codec) Pool() *BufferPool {
	return c.pool
}

// Dictionary は属性辞書を返す
func (c *Codec) Dictionary() Dictionary {
	return c.dict
}
