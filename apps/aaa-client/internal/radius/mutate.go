package radius

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
)

// resolve は属性名（vendorが空なら標準属性）を辞書で解決する
func (p *Packet) resolve(vendor, name string) (*dict.Vendor, *dict.Attr, error) {
	d := p.codec.dict
	if vendor == "" {
		a := d.FindAttr(name)
		if a == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}
		return nil, a, nil
	}
	v := d.FindVendor(vendor)
	if v == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownVendor, vendor)
	}
	a := d.FindVendorAttr(v, name)
	if a == nil {
		return nil, nil, fmt.Errorf("%w: %s %s", ErrUnknownAttribute, vendor, name)
	}
	return v, a, nil
}

// add は属性を末尾へ追加する。値長と容量の検証を通過した場合のみ変更する。
func (p *Packet) add(vendor, name string, val Value) error {
	v, a, err := p.resolve(vendor, name)
	if err != nil {
		return err
	}
	if a.Type != val.typ {
		return fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, a.Name, a.Type, val.typ)
	}
	return p.appendAttr(&Attribute{Attr: a, Vendor: v, value: val})
}

func (p *Packet) appendAttr(attr *Attribute) error {
	if n := attr.Len(); n > maxValueLen(attr.Vendor != nil) {
		return fmt.Errorf("%w: %s (%d bytes)", ErrValueTooLong, attr.Attr.Name, n)
	}
	if newLen := p.length + attr.WireLen(); newLen > p.codec.maxLen {
		return fmt.Errorf("%w: %s would grow packet to %d (max %d)", ErrCapacityExceeded, attr.Attr.Name, newLen, p.codec.maxLen)
	}
	p.attrs = append(p.attrs, attr)
	p.length += attr.WireLen()
	return nil
}

// AddInteger はinteger型属性を追加する
func (p *Packet) AddInteger(vendor, name string, val uint32) error {
	return p.add(vendor, name, IntegerValue(val))
}

// AddOctets はoctets型属性を追加する。valはコピーされる。
func (p *Packet) AddOctets(vendor, name string, val []byte) error {
	return p.add(vendor, name, OctetsValue(val))
}

// AddString はstring型属性を追加する
func (p *Packet) AddString(vendor, name, val string) error {
	return p.add(vendor, name, StringValue(val))
}

// AddIPAddr はipaddr型属性を追加する。addrはIPv4であること。
func (p *Packet) AddIPAddr(vendor, name string, addr netip.Addr) error {
	val, err := ipv4Value(addr)
	if err != nil {
		return err
	}
	return p.add(vendor, name, val)
}

// AddDate はdate型属性を追加する
func (p *Packet) AddDate(vendor, name string, t time.Time) error {
	return p.add(vendor, name, DateValue(t))
}

// AddValue はinteger型属性を列挙値のシンボル名で追加する
func (p *Packet) AddValue(vendor, name, symbol string) error {
	v, a, err := p.resolve(vendor, name)
	if err != nil {
		return err
	}
	val, err := p.symbol(a, symbol)
	if err != nil {
		return err
	}
	return p.appendAttr(&Attribute{Attr: a, Vendor: v, value: val})
}

func (p *Packet) symbol(a *dict.Attr, symbol string) (Value, error) {
	if a.Type != dict.TypeInteger {
		return Value{}, fmt.Errorf("%w: %s is %s, not enumerable", ErrTypeMismatch, a.Name, a.Type)
	}
	dv := p.codec.dict.FindValue(a, symbol)
	if dv == nil {
		return Value{}, fmt.Errorf("%w: %s=%s", ErrUnknownValue, a.Name, symbol)
	}
	return IntegerValue(dv.Val), nil
}

// FindAttr はパケット内で最初に一致する属性を返す。
// vendorが空の場合はベンダーを問わず属性名のみで照合する。
func (p *Packet) FindAttr(vendor, name string) (*Attribute, bool) {
	i := p.index(vendor, name)
	if i < 0 {
		return nil, false
	}
	return p.attrs[i], true
}

func (p *Packet) index(vendor, name string) int {
	for i, a := range p.attrs {
		if a.Attr.Name != name {
			continue
		}
		if vendor != "" && (a.Vendor == nil || a.Vendor.Name != vendor) {
			continue
		}
		return i
	}
	return -1
}

// Remove は最初に一致する属性を取り除き、パケット長を減じる。
// 取り除いた場合はtrueを返す。
func (p *Packet) Remove(vendor, name string) bool {
	i := p.index(vendor, name)
	if i < 0 {
		return false
	}
	p.length -= p.attrs[i].WireLen()
	p.attrs = append(p.attrs[:i], p.attrs[i+1:]...)
	return true
}

// lookup は辞書で解決した記述子と同一の属性をパケット内から探す
func (p *Packet) lookup(vendor, name string) (*Attribute, error) {
	_, da, err := p.resolve(vendor, name)
	if err != nil {
		return nil, err
	}
	for _, a := range p.attrs {
		if a.Attr == da {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAttributeNotFound, name)
}

// change は既存属性の値を置き換える。位置は変えず、長さの差分だけパケット長を調整する。
func (p *Packet) change(vendor, name string, val Value) error {
	a, err := p.lookup(vendor, name)
	if err != nil {
		return err
	}
	return p.replace(a, val)
}

func (p *Packet) replace(a *Attribute, val Value) error {
	if a.Attr.Type != val.typ {
		return fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, a.Attr.Name, a.Attr.Type, val.typ)
	}
	if n := val.size(); n > maxValueLen(a.Vendor != nil) {
		return fmt.Errorf("%w: %s (%d bytes)", ErrValueTooLong, a.Attr.Name, n)
	}
	delta := val.size() - a.Len()
	if newLen := p.length + delta; newLen > p.codec.maxLen {
		return fmt.Errorf("%w: %s would grow packet to %d (max %d)", ErrCapacityExceeded, a.Attr.Name, newLen, p.codec.maxLen)
	}
	a.value = val
	p.length += delta
	return nil
}

// ChangeInteger はinteger型属性の値を変更する
func (p *Packet) ChangeInteger(vendor, name string, val uint32) error {
	return p.change(vendor, name, IntegerValue(val))
}

// ChangeOctets はoctets型属性の値を変更する
func (p *Packet) ChangeOctets(vendor, name string, val []byte) error {
	return p.change(vendor, name, OctetsValue(val))
}

// ChangeString はstring型属性の値を変更する
func (p *Packet) ChangeString(vendor, name, val string) error {
	return p.change(vendor, name, StringValue(val))
}

// ChangeIPAddr はipaddr型属性の値を変更する
func (p *Packet) ChangeIPAddr(vendor, name string, addr netip.Addr) error {
	val, err := ipv4Value(addr)
	if err != nil {
		return err
	}
	return p.change(vendor, name, val)
}

// ChangeDate はdate型属性の値を変更する
func (p *Packet) ChangeDate(vendor, name string, t time.Time) error {
	return p.change(vendor, name, DateValue(t))
}

// ChangeValue はinteger型属性の値を列挙値のシンボル名で変更する
func (p *Packet) ChangeValue(vendor, name, symbol string) error {
	a, err := p.lookup(vendor, name)
	if err != nil {
		return err
	}
	val, err := p.symbol(a.Attr, symbol)
	if err != nil {
		return err
	}
	return p.replace(a, val)
}

func ipv4Value(addr netip.Addr) (Value, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return Value{}, fmt.Errorf("%w: %s is not an IPv4 address", ErrTypeMismatch, addr)
	}
	return IPAddrValue(addr.As4()), nil
}
