package dict

import (
	"errors"
	"testing"
)

func TestAddAttr(t *testing.T) {
	d := New()
	a, err := d.AddAttr(1, "User-Name", TypeString)
	if err != nil {
		t.Fatalf("AddAttr failed: %v", err)
	}
	if got := d.FindAttr("User-Name"); got != a {
		t.Errorf("FindAttr = %v, want %v", got, a)
	}
	if got := d.FindAttrByID(nil, 1); got != a {
		t.Errorf("FindAttrByID = %v, want %v", got, a)
	}
}

func TestAddAttr_Duplicate(t *testing.T) {
	tests := []struct {
		name   string
		id     uint8
		attrNm string
	}{
		{name: "same id", id: 1, attrNm: "Other"},
		{name: "same name", id: 2, attrNm: "User-Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			if _, err := d.AddAttr(1, "User-Name", TypeString); err != nil {
				t.Fatalf("AddAttr failed: %v", err)
			}
			_, err := d.AddAttr(tt.id, tt.attrNm, TypeString)
			if !errors.Is(err, ErrDuplicateAttr) {
				t.Errorf("expected ErrDuplicateAttr, got: %v", err)
			}
		})
	}
}

func TestAddAttr_InvalidType(t *testing.T) {
	d := New()
	if _, err := d.AddAttr(1, "X", Type(0)); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got: %v", err)
	}
	if _, err := d.AddAttr(1, "X", Type(9)); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got: %v", err)
	}
}

func TestVendorLookup(t *testing.T) {
	d := New()
	v, err := d.AddVendor(9, "Cisco")
	if err != nil {
		t.Fatalf("AddVendor failed: %v", err)
	}
	a, err := d.AddVendorAttr(v, 1, "Cisco-AVPair", TypeString)
	if err != nil {
		t.Fatalf("AddVendorAttr failed: %v", err)
	}

	if d.FindVendor("Cisco") != v {
		t.Error("FindVendor should return registered vendor")
	}
	if d.FindVendorByID(9) != v {
		t.Error("FindVendorByID should return registered vendor")
	}
	if d.FindVendorAttr(v, "Cisco-AVPair") != a {
		t.Error("FindVendorAttr should return vendor attribute")
	}
	if d.FindAttrByID(v, 1) != a {
		t.Error("FindAttrByID(vendor) should return vendor attribute")
	}
	// ベンダー属性は標準属性の名前空間に現れない
	if d.FindAttr("Cisco-AVPair") != nil {
		t.Error("FindAttr should not find vendor attribute")
	}
	if d.FindAttrByID(nil, 1) != nil {
		t.Error("FindAttrByID(nil) should not find vendor attribute")
	}
	if d.FindVendorAttr(nil, "Cisco-AVPair") != nil {
		t.Error("FindVendorAttr(nil) should return nil")
	}
	if _, err := d.AddVendor(9, "Other"); !errors.Is(err, ErrDuplicateVendor) {
		t.Errorf("expected ErrDuplicateVendor, got: %v", err)
	}
}

func TestValues(t *testing.T) {
	d := New()
	a, _ := d.AddAttr(40, "Acct-Status-Type", TypeInteger)
	if err := d.AddValue(a, "Start", 1); err != nil {
		t.Fatalf("AddValue failed: %v", err)
	}
	if err := d.AddValue(a, "Stop", 2); err != nil {
		t.Fatalf("AddValue failed: %v", err)
	}

	if v := d.FindValue(a, "Stop"); v == nil || v.Val != 2 {
		t.Errorf("FindValue(Stop) = %v, want 2", v)
	}
	if v := d.FindValueByCode(a, 1); v == nil || v.Name != "Start" {
		t.Errorf("FindValueByCode(1) = %v, want Start", v)
	}
	if d.FindValue(a, "Unknown") != nil {
		t.Error("FindValue should return nil for unknown symbol")
	}
	if d.FindValueByCode(a, 99) != nil {
		t.Error("FindValueByCode should return nil for unknown code")
	}
	if err := d.AddValue(a, "Start", 3); !errors.Is(err, ErrDuplicateValue) {
		t.Errorf("expected ErrDuplicateValue, got: %v", err)
	}

	s, _ := d.AddAttr(1, "User-Name", TypeString)
	if err := d.AddValue(s, "x", 1); !errors.Is(err, ErrNotEnumerable) {
		t.Errorf("expected ErrNotEnumerable, got: %v", err)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeInteger, "integer"},
		{TypeOctets, "octets"},
		{TypeString, "string"},
		{TypeIPAddr, "ipaddr"},
		{TypeDate, "date"},
		{Type(42), "type(42)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestBuiltin(t *testing.T) {
	d := Builtin()

	a := d.FindAttr("Acct-Status-Type")
	if a == nil {
		t.Fatal("Acct-Status-Type not found")
	}
	if a.ID != 40 || a.Type != TypeInteger {
		t.Errorf("Acct-Status-Type = {%d %s}, want {40 integer}", a.ID, a.Type)
	}
	if v := d.FindValue(a, "Interim-Update"); v == nil || v.Val != 3 {
		t.Errorf("Interim-Update = %v, want 3", v)
	}
	if a := d.FindAttr("Framed-IP-Address"); a == nil || a.ID != 8 || a.Type != TypeIPAddr {
		t.Errorf("Framed-IP-Address = %+v", a)
	}
	if a := d.FindAttr("Event-Timestamp"); a == nil || a.Type != TypeDate {
		t.Errorf("Event-Timestamp = %+v", a)
	}

	ms := d.FindVendorByID(VendorIDMicrosoft)
	if ms == nil || ms.Name != "Microsoft" {
		t.Fatalf("Microsoft vendor = %+v", ms)
	}
	if a := d.FindVendorAttr(ms, "MS-Primary-DNS-Server"); a == nil || a.ID != 28 {
		t.Errorf("MS-Primary-DNS-Server = %+v", a)
	}
	if d.FindAttrByID(nil, 26) != nil {
		t.Error("Vendor-Specific must not be a plain dictionary attribute")
	}
}
