package radius

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// Build はパケットをワイヤー形式へ直列化し、そのバイト列を返す。
// ヘッダーのLengthにはAdd系/Change系で累計したパケット長をそのまま用いる。
// 返されたスライスはFreeまで有効。Buildは送信前の最終段階として1度だけ呼ぶ。
func (c *Codec) Build(p *Packet) ([]byte, error) {
	if p.buf == nil {
		buf, err := c.pool.Get()
		if err != nil {
			return nil, err
		}
		p.buf = buf
	}
	b := p.buf.Bytes()
	if p.length > len(b) {
		p.releaseBuffer()
		return nil, fmt.Errorf("%w: length=%d", ErrCapacityExceeded, p.length)
	}

	b[0] = byte(p.Code)
	b[1] = p.ID
	binary.BigEndian.PutUint16(b[2:4], uint16(p.length))
	copy(b[4:HeaderLen], p.Authenticator[:])

	off := HeaderLen
	for _, a := range p.attrs {
		if off+a.WireLen() > p.length {
			p.releaseBuffer()
			return nil, fmt.Errorf("%w: attribute %s overruns length %d", ErrLengthCorrupted, a.Attr.Name, p.length)
		}
		off += a.encode(b[off:])
	}
	if off != p.length {
		p.releaseBuffer()
		return nil, fmt.Errorf("%w: encoded %d, length %d", ErrLengthCorrupted, off, p.length)
	}

	if c.verbose {
		slog.Info("RADIUSパケット構築",
			"event_id", "PKT_BUILD",
			"packet", p,
			"dump", c.Format(p),
		)
	}
	return b[:p.length], nil
}
