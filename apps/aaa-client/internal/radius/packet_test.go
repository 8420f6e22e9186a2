package radius

import (
	"bytes"
	"errors"
	"log/slog"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
)

// attrTuple は属性を比較用に（ベンダーID, 属性ID, 値）へ平坦化したもの
type attrTuple struct {
	Vendor uint32
	ID     uint8
	Value  Value
}

var valueComparer = cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })

func tuples(p *Packet) []attrTuple {
	out := make([]attrTuple, 0, len(p.Attributes()))
	for _, a := range p.Attributes() {
		out = append(out, attrTuple{Vendor: vendorIDOf(a.Vendor), ID: a.Attr.ID, Value: a.Value()})
	}
	return out
}

// expectedLen は属性列から計算したパケット長を返す
func expectedLen(p *Packet) int {
	n := HeaderLen
	for _, a := range p.Attributes() {
		n += a.WireLen()
	}
	return n
}

// rawPacket はヘッダーのLengthを正しく設定したワイヤー形式を組み立てる
func rawPacket(code Code, id uint8, attrs ...[]byte) []byte {
	b := make([]byte, HeaderLen)
	b[0] = byte(code)
	b[1] = id
	for i := 4; i < HeaderLen; i++ {
		b[i] = byte(i)
	}
	for _, a := range attrs {
		b = append(b, a...)
	}
	b[2] = byte(len(b) >> 8)
	b[3] = byte(len(b))
	return b
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func buildSample(t *testing.T, c *Codec) *Packet {
	t.Helper()
	p := c.NewPacket(CodeAccountingRequest)
	p.ID = 0x2a
	mustNoErr(t, p.AddString("", "User-Name", "alice.smith@isp.example"))
	mustNoErr(t, p.AddValue("", "Acct-Status-Type", "Start"))
	mustNoErr(t, p.AddInteger("", "NAS-Port", 17))
	mustNoErr(t, p.AddIPAddr("", "Framed-IP-Address", netip.MustParseAddr("192.0.2.10")))
	mustNoErr(t, p.AddOctets("", "Class", []byte{0xde, 0xad, 0xbe, 0xef}))
	mustNoErr(t, p.AddDate("", "Event-Timestamp", time.Unix(1700000000, 0)))
	mustNoErr(t, p.AddString("Cisco", "Cisco-AVPair", "ip:addr-pool=p1"))
	mustNoErr(t, p.AddInteger(testVendorName, "Acme-Rate", 1000000))
	mustNoErr(t, p.AddIPAddr(testVendorName, "Acme-Gateway", netip.MustParseAddr("198.51.100.1")))
	return p
}

func TestNewPacket(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := c.NewPacket(CodeAccessRequest)

	if p.Code != CodeAccessRequest {
		t.Errorf("Code = %v, want %v", p.Code, CodeAccessRequest)
	}
	if p.ID != 1 {
		t.Errorf("ID = %d, want 1", p.ID)
	}
	if p.Len() != HeaderLen {
		t.Errorf("Len() = %d, want %d", p.Len(), HeaderLen)
	}
	if len(p.Attributes()) != 0 {
		t.Errorf("Attributes() = %d, want 0", len(p.Attributes()))
	}
	if p.Wire() != nil {
		t.Error("Wire() before Build should be nil")
	}
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := buildSample(t, c)
	defer p.Free()
	p.Authenticator = [AuthenticatorLen]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(wire) != p.Len() {
		t.Fatalf("len(wire) = %d, want %d", len(wire), p.Len())
	}

	got, err := c.Parse(wire)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer got.Free()

	if got.Code != p.Code || got.ID != p.ID || got.Authenticator != p.Authenticator {
		t.Errorf("header = (%v, %d, %x), want (%v, %d, %x)",
			got.Code, got.ID, got.Authenticator, p.Code, p.ID, p.Authenticator)
	}
	if got.Len() != p.Len() {
		t.Errorf("Len() = %d, want %d", got.Len(), p.Len())
	}
	if diff := cmp.Diff(tuples(p), tuples(got), valueComparer); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestLengthInvariant(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := c.NewPacket(CodeAccountingRequest)
	defer p.Free()

	check := func(step string) {
		t.Helper()
		if p.Len() != expectedLen(p) {
			t.Fatalf("%s: Len() = %d, want %d", step, p.Len(), expectedLen(p))
		}
	}

	check("empty")
	mustNoErr(t, p.AddString("", "User-Name", "bob"))
	check("add string")
	mustNoErr(t, p.AddInteger(testVendorName, "Acme-Rate", 1))
	check("add vsa")
	mustNoErr(t, p.AddOctets("", "State", make([]byte, 30)))
	check("add octets")
	mustNoErr(t, p.ChangeOctets("", "State", make([]byte, 3)))
	check("shrink octets")
	if err := p.ChangeString(testVendorName, "Acme-Rate", "x"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("ChangeString error = %v, want ErrTypeMismatch", err)
	}
	check("failed change")
	if !p.Remove("", "User-Name") {
		t.Fatal("Remove(User-Name) = false")
	}
	check("remove")

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(wire) != p.Len() {
		t.Errorf("len(wire) = %d, want %d", len(wire), p.Len())
	}
	if got := int(wire[2])<<8 | int(wire[3]); got != p.Len() {
		t.Errorf("Length field = %d, want %d", got, p.Len())
	}
}

func TestCapacityBoundary(t *testing.T) {
	c := newTestCodec(t, Config{MaxLength: 40})
	p := c.NewPacket(CodeAccessRequest)
	defer p.Free()

	// 20 + (2+18) = 40 は上限ちょうどで受け付ける
	mustNoErr(t, p.AddString("", "User-Name", strings.Repeat("u", 18)))
	if p.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", p.Len())
	}

	before := p.Len()
	tests := []struct {
		name string
		add  func() error
	}{
		{"integer", func() error { return p.AddInteger("", "NAS-Port", 1) }},
		{"empty octets", func() error { return p.AddOctets("", "State", nil) }},
		{"vsa", func() error { return p.AddInteger(testVendorName, "Acme-Rate", 1) }},
		{"grow string", func() error { return p.ChangeString("", "User-Name", strings.Repeat("u", 19)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, ErrCapacityExceeded) {
				t.Errorf("error = %v, want ErrCapacityExceeded", err)
			}
			if p.Len() != before {
				t.Errorf("Len() = %d, want %d", p.Len(), before)
			}
			if len(p.Attributes()) != 1 {
				t.Errorf("Attributes() = %d, want 1", len(p.Attributes()))
			}
		})
	}

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build at max length failed: %v", err)
	}
	if len(wire) != 40 {
		t.Errorf("len(wire) = %d, want 40", len(wire))
	}
}

func TestVendorSpecificWireFormat(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := c.NewPacket(CodeAccountingRequest)
	defer p.Free()

	mustNoErr(t, p.AddInteger(testVendorName, "Acme-Rate", 0x01020304))
	if p.Len() != HeaderLen+12 {
		t.Fatalf("Len() = %d, want %d", p.Len(), HeaderLen+12)
	}

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []byte{
		TypeVendorSpecific, 12,
		0x00, 0x00, 0x10, 0x92, // 4242
		testVendorType, 6,
		0x01, 0x02, 0x03, 0x04,
	}
	if !bytes.Equal(wire[HeaderLen:], want) {
		t.Errorf("VSA bytes = % x, want % x", wire[HeaderLen:], want)
	}

	// ベンダー未登録の辞書では属性ごと読み飛ばす
	plain := newTestCodec(t, Config{Dictionary: dict.Builtin()})
	got, err := plain.Parse(wire)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer got.Free()
	if len(got.Attributes()) != 0 {
		t.Errorf("Attributes() = %d, want 0", len(got.Attributes()))
	}
	if got.Len() != HeaderLen {
		t.Errorf("Len() = %d, want %d", got.Len(), HeaderLen)
	}
}

func TestStandardAttributeWireFormat(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := c.NewPacket(CodeAccessRequest)
	p.ID = 7
	defer p.Free()

	mustNoErr(t, p.AddString("", "User-Name", "bob"))
	mustNoErr(t, p.AddIPAddr("", "NAS-IP-Address", netip.MustParseAddr("10.0.0.1")))

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []byte{
		byte(CodeAccessRequest), 7, 0x00, 0x1f,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		1, 5, 'b', 'o', 'b',
		4, 6, 10, 0, 0, 1,
	}
	if !bytes.Equal(wire, want) {
		t.Errorf("wire = % x, want % x", wire, want)
	}
}

func TestBuildReusesBuffer(t *testing.T) {
	c := newTestCodec(t, Config{})
	p := c.NewPacket(CodeAccountingRequest)
	mustNoErr(t, p.AddValue("", "Acct-Status-Type", "Stop"))

	if _, err := c.Build(p); err != nil {
		t.Fatalf("Build #1 failed: %v", err)
	}
	if _, err := c.Build(p); err != nil {
		t.Fatalf("Build #2 failed: %v", err)
	}
	if n := c.Pool().InUse(); n != 1 {
		t.Errorf("Pool().InUse() = %d, want 1", n)
	}

	p.Free()
	if n := c.Pool().InUse(); n != 0 {
		t.Errorf("Pool().InUse() after Free = %d, want 0", n)
	}
	if p.Wire() != nil || p.Attributes() != nil {
		t.Error("Free should drop wire buffer and attributes")
	}
}

func TestBuildOutOfMemory(t *testing.T) {
	pool := NewBufferPool(DefaultMaxLength, 1)
	c := newTestCodec(t, Config{Pool: pool})

	held, err := pool.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer held.Release()

	p := c.NewPacket(CodeAccessRequest)
	defer p.Free()
	if _, err := c.Build(p); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Build error = %v, want ErrOutOfMemory", err)
	}
	if p.Wire() != nil {
		t.Error("Wire() should be nil after failed Build")
	}
}

func TestBuildLengthCorrupted(t *testing.T) {
	c := newTestCodec(t, Config{})

	tests := []struct {
		name  string
		delta int
	}{
		{"length too short", -1},
		{"length too long", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.NewPacket(CodeAccessRequest)
			defer p.Free()
			mustNoErr(t, p.AddString("", "User-Name", "carol"))
			p.length += tt.delta

			if _, err := c.Build(p); !errors.Is(err, ErrLengthCorrupted) {
				t.Errorf("Build error = %v, want ErrLengthCorrupted", err)
			}
			if n := c.Pool().InUse(); n != 0 {
				t.Errorf("Pool().InUse() = %d, want 0", n)
			}
		})
	}
}

func TestVerboseDump(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(orig)

	c := newTestCodec(t, Config{Verbose: true, MaskUserName: true})
	p := c.NewPacket(CodeAccountingRequest)
	defer p.Free()
	mustNoErr(t, p.AddString("", "User-Name", "alice.smith@isp.example"))

	wire, err := c.Build(p)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	got, err := c.Parse(wire)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got.Free()

	out := buf.String()
	for _, want := range []string{`"event_id":"PKT_BUILD"`, `"event_id":"PKT_RECV"`, "al********h@isp.example"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "alice.smith") {
		t.Errorf("log output contains unmasked user name:\n%s", out)
	}
}
