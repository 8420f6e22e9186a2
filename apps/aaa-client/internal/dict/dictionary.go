package dict

import "fmt"

// Dictionary はメモリ上の属性辞書。
// 構築（Add系）は起動時に単一goroutineで行い、以降の検索は並行に呼び出してよい。
type Dictionary struct {
	attrs         map[uint8]*Attr
	attrsByName   map[string]*Attr
	vendors       map[uint32]*Vendor
	vendorsByName map[string]*Vendor
}

// New は空の辞書を生成する
func New() *Dictionary {
	return &Dictionary{
		attrs:         make(map[uint8]*Attr),
		attrsByName:   make(map[string]*Attr),
		vendors:       make(map[uint32]*Vendor),
		vendorsByName: make(map[string]*Vendor),
	}
}

// AddAttr は標準属性を登録する
func (d *Dictionary) AddAttr(id uint8, name string, typ Type) (*Attr, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	if _, ok := d.attrs[id]; ok {
		return nil, fmt.Errorf("%w: id=%d", ErrDuplicateAttr, id)
	}
	if _, ok := d.attrsByName[name]; ok {
		return nil, fmt.Errorf("%w: name=%s", ErrDuplicateAttr, name)
	}
	a := &Attr{ID: id, Name: name, Type: typ}
	d.attrs[id] = a
	d.attrsByName[name] = a
	return a, nil
}

// AddVendor はベンダーを登録する
func (d *Dictionary) AddVendor(id uint32, name string) (*Vendor, error) {
	if _, ok := d.vendors[id]; ok {
		return nil, fmt.Errorf("%w: id=%d", ErrDuplicateVendor, id)
	}
	if _, ok := d.vendorsByName[name]; ok {
		return nil, fmt.Errorf("%w: name=%s", ErrDuplicateVendor, name)
	}
	v := &Vendor{
		ID:     id,
		Name:   name,
		attrs:  make(map[uint8]*Attr),
		byName: make(map[string]*Attr),
	}
	d.vendors[id] = v
	d.vendorsByName[name] = v
	return v, nil
}

// AddVendorAttr はベンダー固有属性を登録する
func (d *Dictionary) AddVendorAttr(v *Vendor, id uint8, name string, typ Type) (*Attr, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}
	if _, ok := v.attrs[id]; ok {
		return nil, fmt.Errorf("%w: vendor=%s id=%d", ErrDuplicateAttr, v.Name, id)
	}
	if _, ok := v.byName[name]; ok {
		return nil, fmt.Errorf("%w: vendor=%s name=%s", ErrDuplicateAttr, v.Name, name)
	}
	a := &Attr{ID: id, Name: name, Type: typ}
	v.attrs[id] = a
	v.byName[name] = a
	return a, nil
}

// AddValue は列挙値を登録する
func (d *Dictionary) AddValue(a *Attr, name string, val uint32) error {
	if a.Type != TypeInteger {
		return fmt.Errorf("%w: %s", ErrNotEnumerable, a.Name)
	}
	for _, v := range a.Values {
		if v.Name == name {
			return fmt.Errorf("%w: %s=%s", ErrDuplicateValue, a.Name, name)
		}
	}
	a.Values = append(a.Values, &Value{Name: name, Val: val})
	return nil
}

// FindAttr は標準属性を名前で検索する
func (d *Dictionary) FindAttr(name string) *Attr {
	return d.attrsByName[name]
}

// FindVendorAttr はベンダー固有属性を名前で検索する
func (d *Dictionary) FindVendorAttr(v *Vendor, name string) *Attr {
	if v == nil {
		return nil
	}
	return v.byName[name]
}

// FindAttrByID は属性をIDで検索する。vendorがnilの場合は標準属性を検索する。
func (d *Dictionary) FindAttrByID(v *Vendor, id uint8) *Attr {
	if v == nil {
		return d.attrs[id]
	}
	return v.attrs[id]
}

// FindVendor はベンダーを名前で検索する
func (d *Dictionary) FindVendor(name string) *Vendor {
	return d.vendorsByName[name]
}

// FindVendorByID はベンダーをIDで検索する
func (d *Dictionary) FindVendorByID(id uint32) *Vendor {
	return d.vendors[id]
}

// FindValue は列挙値をシンボル名で検索する
func (d *Dictionary) FindValue(a *Attr, name string) *Value {
	if a == nil {
		return nil
	}
	for _, v := range a.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// FindValueByCode は列挙値を数値で検索する
func (d *Dictionary) FindValueByCode(a *Attr, val uint32) *Value {
	if a == nil {
		return nil
	}
	for _, v := range a.Values {
		if v.Val == val {
			return v
		}
	}
	return nil
}

func checkType(typ Type) error {
	if typ < TypeInteger || typ > TypeDate {
		return fmt.Errorf("%w: %d", ErrInvalidType, uint8(typ))
	}
	return nil
}
