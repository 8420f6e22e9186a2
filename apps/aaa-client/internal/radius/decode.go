package radius

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
)

// Parse は受信したワイヤー形式のバイト列をパケットへ復号する。
//
// ヘッダー長不足、Lengthフィールドと受信バイト数の矛盾、属性長の不正が
// あった場合はパケット全体を破棄し、ErrMalformedPacketをラップしたエラーを返す。
// 途中まで復号した属性は返さない。
// 辞書にない属性および未知ベンダーのVSAはログを出力して読み飛ばす。
// Len()は復号した属性を再符号化した長さで、読み飛ばした属性は含まない。
// 1つのVSAに複数の内側属性がある場合は属性ごとにVSAとして数えるため、
// その長さが最大長を超える場合もパケット全体を破棄する。
// rawは呼び出し後に再利用してよい（octets/stringはコピーする）。
func (c *Codec) Parse(raw []byte) (*Packet, error) {
	if len(raw) < HeaderLen {
		return nil, fmt.Errorf("%w: %w: %d bytes", ErrMalformedPacket, ErrShortPacket, len(raw))
	}
	length := int(binary.BigEndian.Uint16(raw[2:4]))
	if length > len(raw) {
		return nil, fmt.Errorf("%w: %w: length=%d, received %d", ErrMalformedPacket, ErrLengthMismatch, length, len(raw))
	}
	if length < HeaderLen || length > c.maxLen {
		return nil, fmt.Errorf("%w: %w: length=%d", ErrMalformedPacket, ErrLengthMismatch, length)
	}

	p := c.NewPacket(Code(raw[0]))
	p.ID = raw[1]
	copy(p.Authenticator[:], raw[4:HeaderLen])

	body := raw[HeaderLen:length]
	for len(body) > 0 {
		typ, payload, rest, err := readTLV(body)
		if err != nil {
			p.Free()
			return nil, err
		}
		body = rest

		if typ != TypeVendorSpecific {
			if err := c.decodeAttr(p, nil, typ, payload); err != nil {
				p.Free()
				return nil, err
			}
			continue
		}
		if err := c.decodeVSA(p, payload); err != nil {
			p.Free()
			return nil, err
		}
	}

	if c.verbose {
		slog.Info("RADIUSパケット受信",
			"event_id", "PKT_RECV",
			"packet", p,
			"dump", c.Format(p),
		)
	}
	return p, nil
}

// decodeVSA はVendor-Specific属性のペイロードを復号する。
// 未知ベンダーの場合はペイロード全体を検証せずに読み飛ばす。
// 既知ベンダーの場合は内側のTLVを順に復号し、不正な長さはパケット破棄とする。
func (c *Codec) decodeVSA(p *Packet, payload []byte) error {
	if len(payload) < vendorIDLen {
		return fmt.Errorf("%w: %w: vendor-specific payload %d bytes", ErrMalformedPacket, ErrBadAttributeLength, len(payload))
	}
	vendorID := binary.BigEndian.Uint32(payload[:vendorIDLen])
	vendor := c.dict.FindVendorByID(vendorID)
	if vendor == nil {
		slog.Warn("未知のベンダー属性を受信",
			"event_id", "RADIUS_UNKNOWN_VENDOR",
			"vendor_id", vendorID,
			"length", len(payload),
		)
		return nil
	}

	inner := payload[vendorIDLen:]
	if len(inner) == 0 {
		return fmt.Errorf("%w: %w: empty vendor-specific attribute (vendor=%d)", ErrMalformedPacket, ErrBadAttributeLength, vendorID)
	}
	for len(inner) > 0 {
		typ, value, rest, err := readTLV(inner)
		if err != nil {
			return err
		}
		inner = rest
		if err := c.decodeAttr(p, vendor, typ, value); err != nil {
			return err
		}
	}
	return nil
}

// decodeAttr は辞書に従って属性を生成し、パケットの末尾へ追加する
func (c *Codec) decodeAttr(p *Packet, vendor *dict.Vendor, typ uint8, payload []byte) error {
	da := c.dict.FindAttrByID(vendor, typ)
	if da == nil {
		slog.Warn("未知の属性を受信",
			"event_id", "RADIUS_UNKNOWN_ATTR",
			"vendor_id", vendorIDOf(vendor),
			"type", typ,
			"length", len(payload),
		)
		return nil
	}
	val, ok := decodeValue(da.Type, payload)
	if !ok {
		slog.Warn("属性値の長さが型と一致しない",
			"event_id", "RADIUS_BAD_ATTR",
			"vendor_id", vendorIDOf(vendor),
			"attr", da.Name,
			"attr_type", da.Type.String(),
			"length", len(payload),
		)
		return nil
	}
	a := &Attribute{Attr: da, Vendor: vendor, value: val}
	if newLen := p.length + a.WireLen(); newLen > c.maxLen {
		return fmt.Errorf("%w: %w: attribute %s grows packet to %d (max %d)",
			ErrMalformedPacket, ErrCapacityExceeded, da.Name, newLen, c.maxLen)
	}
	p.attrs = append(p.attrs, a)
	p.length += a.WireLen()
	return nil
}

func vendorIDOf(v *dict.Vendor) uint32 {
	if v == nil {
		return 0
	}
	return v.ID
}
