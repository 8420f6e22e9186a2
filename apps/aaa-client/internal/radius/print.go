package radius

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
	"layeh.com/radius/rfc2865"
)

// Format はパケットを診断用の1行表現に変換する。
// 例: [RADIUS Accounting-Request id=2a <User-Name "al***e"> <Cisco Cisco-AVPair "ip:addr-pool=p1">]
// integerは列挙値名（なければ10進）、stringは引用符付き、ipaddrはドット区切りで表示し、
// それ以外の型は値を表示しない。ワイヤー形式には関与しない。
func (c *Codec) Format(p *Packet) string {
	var sb strings.Builder
	sb.WriteString("[RADIUS ")
	sb.WriteString(p.Code.String())
	sb.WriteString(" id=")
	sb.WriteString(strconv.FormatUint(uint64(p.ID), 16))
	for _, a := range p.attrs {
		sb.WriteString(" <")
		if a.Vendor != nil {
			sb.WriteString(a.Vendor.Name)
			sb.WriteByte(' ')
		}
		sb.WriteString(a.Attr.Name)
		c.formatValue(&sb, a)
		sb.WriteByte('>')
	}
	sb.WriteByte(']')
	return sb.String()
}

func (c *Codec) formatValue(sb *strings.Builder, a *Attribute) {
	switch a.Attr.Type {
	case dict.TypeInteger:
		sb.WriteByte(' ')
		if dv := c.dict.FindValueByCode(a.Attr, a.value.num); dv != nil {
			sb.WriteString(dv.Name)
		} else {
			sb.WriteString(strconv.FormatUint(uint64(a.value.num), 10))
		}
	case dict.TypeString:
		s := a.value.Text()
		if a.Vendor == nil && a.Attr.ID == uint8(rfc2865.UserName_Type) {
			s = c.masker.UserName(s)
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(s))
	case dict.TypeIPAddr:
		sb.WriteByte(' ')
		sb.WriteString(a.value.Addr().String())
	}
}

// String はFormatと同じ診断用表現を返す
func (p *Packet) String() string {
	if p.codec == nil {
		return "[RADIUS " + p.Code.String() + "]"
	}
	return p.codec.Format(p)
}

// LogValue はslog出力用の要約を返す。属性値は含めない。
func (p *Packet) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", p.Code.String()),
		slog.Int("id", int(p.ID)),
		slog.Int("length", p.length),
		slog.Int("attrs", len(p.attrs)),
	)
}
