package radius

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultBufferLimit は同時に確保できるワイヤーバッファ数の既定値
const DefaultBufferLimit = 64

// BufferPool はパケット長上限サイズのワイヤーバッファを貸し出す。
// プロセス全体で共有し、同時貸し出し数を上限で抑える。
// 呼び出し元はGet()したバッファを必ずRelease()する。
type BufferPool struct {
	size  int
	limit int64
	inUse atomic.Int64
	pool  sync.Pool
}

// NewBufferPool は新しいBufferPoolを生成する。limitが0以下なら上限なし。
func NewBufferPool(size, limit int) *BufferPool {
	p := &BufferPool{size: size, limit: int64(limit)}
	p.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return p
}

// Get はバッファを1つ貸し出す。上限に達している場合はErrOutOfMemoryを返す。
func (p *BufferPool) Get() (*Buffer, error) {
	if n := p.inUse.Add(1); p.limit > 0 && n > p.limit {
		p.inUse.Add(-1)
		slog.Error("ワイヤーバッファ確保失敗",
			"event_id", "RADIUS_OOM",
			"in_use", n-1,
			"limit", p.limit,
		)
		return nil, ErrOutOfMemory
	}
	bp := p.pool.Get().(*[]byte)
	return &Buffer{b: (*bp)[:p.size], pool: p}, nil
}

// InUse は貸し出し中のバッファ数を返す
func (p *BufferPool) InUse() int {
	return int(p.inUse.Load())
}

// Size はバッファ1つあたりのバイト数を返す
func (p *BufferPool) Size() int {
	return p.size
}

func (p *BufferPool) put(b []byte) {
	b = b[:cap(b)]
	p.pool.Put(&b)
	p.inUse.Add(-1)
}

// Buffer はBufferPoolから貸し出されたワイヤーバッファ
type Buffer struct {
	b    []byte
	pool *BufferPool
}

// Bytes はバッファ全体を返す
func (b *Buffer) Bytes() []byte {
	return b.b
}

// Release はバッファをプールへ返却する。返却後のBytes()は空になる。
func (b *Buffer) Release() {
	if b == nil || b.b == nil {
		return
	}
	b.pool.put(b.b)
	b.b = nil
}
