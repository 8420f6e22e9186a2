package dict

import (
	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
	"layeh.com/radius/rfc2866"
	"layeh.com/radius/rfc2869"
)

// ベンダーID（IANA Private Enterprise Numbers）
const (
	VendorIDCisco     uint32 = 9
	VendorIDMicrosoft uint32 = 311
)

type attrDef struct {
	id   radius.Type
	name string
	typ  Type
}

type valueDef struct {
	attr string
	name string
	val  uint32
}

// PPP NASが送受信する標準属性（RFC 2865/2866/2869）
var builtinAttrs = []attrDef{
	{rfc2865.UserName_Type, "User-Name", TypeString},
	{rfc2865.UserPassword_Type, "User-Password", TypeOctets},
	{rfc2865.CHAPPassword_Type, "CHAP-Password", TypeOctets},
	{rfc2865.NASIPAddress_Type, "NAS-IP-Address", TypeIPAddr},
	{rfc2865.NASPort_Type, "NAS-Port", TypeInteger},
	{rfc2865.ServiceType_Type, "Service-Type", TypeInteger},
	{rfc2865.FramedProtocol_Type, "Framed-Protocol", TypeInteger},
	{rfc2865.FramedIPAddress_Type, "Framed-IP-Address", TypeIPAddr},
	{rfc2865.FramedIPNetmask_Type, "Framed-IP-Netmask", TypeIPAddr},
	{rfc2865.FramedMTU_Type, "Framed-MTU", TypeInteger},
	{rfc2865.ReplyMessage_Type, "Reply-Message", TypeString},
	{rfc2865.State_Type, "State", TypeOctets},
	{rfc2865.Class_Type, "Class", TypeOctets},
	{rfc2865.SessionTimeout_Type, "Session-Timeout", TypeInteger},
	{rfc2865.IdleTimeout_Type, "Idle-Timeout", TypeInteger},
	{rfc2865.CalledStationID_Type, "Called-Station-Id", TypeString},
	{rfc2865.CallingStationID_Type, "Calling-Station-Id", TypeString},
	{rfc2865.NASIdentifier_Type, "NAS-Identifier", TypeString},
	{rfc2865.ProxyState_Type, "Proxy-State", TypeOctets},
	{rfc2865.CHAPChallenge_Type, "CHAP-Challenge", TypeOctets},
	{rfc2865.NASPortType_Type, "NAS-Port-Type", TypeInteger},
	{rfc2866.AcctStatusType_Type, "Acct-Status-Type", TypeInteger},
	{rfc2866.AcctDelayTime_Type, "Acct-Delay-Time", TypeInteger},
	{rfc2866.AcctInputOctets_Type, "Acct-Input-Octets", TypeInteger},
	{rfc2866.AcctOutputOctets_Type, "Acct-Output-Octets", TypeInteger},
	{rfc2866.AcctSessionID_Type, "Acct-Session-Id", TypeString},
	{rfc2866.AcctAuthentic_Type, "Acct-Authentic", TypeInteger},
	{rfc2866.AcctSessionTime_Type, "Acct-Session-Time", TypeInteger},
	{rfc2866.AcctInputPackets_Type, "Acct-Input-Packets", TypeInteger},
	{rfc2866.AcctOutputPackets_Type, "Acct-Output-Packets", TypeInteger},
	{rfc2866.AcctTerminateCause_Type, "Acct-Terminate-Cause", TypeInteger},
	{rfc2866.AcctMultiSessionID_Type, "Acct-Multi-Session-Id", TypeString},
	{rfc2869.AcctInputGigawords_Type, "Acct-Input-Gigawords", TypeInteger},
	{rfc2869.AcctOutputGigawords_Type, "Acct-Output-Gigawords", TypeInteger},
	{rfc2869.EventTimestamp_Type, "Event-Timestamp", TypeDate},
	{rfc2869.ConnectInfo_Type, "Connect-Info", TypeString},
	{rfc2869.EAPMessage_Type, "EAP-Message", TypeOctets},
	{rfc2869.MessageAuthenticator_Type, "Message-Authenticator", TypeOctets},
	{rfc2869.AcctInterimInterval_Type, "Acct-Interim-Interval", TypeInteger},
	{rfc2869.NASPortID_Type, "NAS-Port-Id", TypeString},
}

var builtinValues = []valueDef{
	{"Service-Type", "Login-User", 1},
	{"Service-Type", "Framed-User", uint32(rfc2865.ServiceType_Value_FramedUser)},
	{"Service-Type", "Outbound-User", 5},
	{"Service-Type", "Administrative-User", 6},
	{"Framed-Protocol", "PPP", uint32(rfc2865.FramedProtocol_Value_PPP)},
	{"NAS-Port-Type", "Async", 0},
	{"NAS-Port-Type", "Sync", 1},
	{"NAS-Port-Type", "Virtual", 5},
	{"NAS-Port-Type", "Ethernet", 15},
	{"NAS-Port-Type", "xDSL", 16},
	{"Acct-Status-Type", "Start", uint32(rfc2866.AcctStatusType_Value_Start)},
	{"Acct-Status-Type", "Stop", uint32(rfc2866.AcctStatusType_Value_Stop)},
	{"Acct-Status-Type", "Interim-Update", uint32(rfc2866.AcctStatusType_Value_InterimUpdate)},
	{"Acct-Status-Type", "Accounting-On", 7},
	{"Acct-Status-Type", "Accounting-Off", 8},
	{"Acct-Authentic", "RADIUS", 1},
	{"Acct-Authentic", "Local", 2},
	{"Acct-Authentic", "Remote", 3},
	{"Acct-Terminate-Cause", "User-Request", 1},
	{"Acct-Terminate-Cause", "Lost-Carrier", 2},
	{"Acct-Terminate-Cause", "Lost-Service", 3},
	{"Acct-Terminate-Cause", "Idle-Timeout", 4},
	{"Acct-Terminate-Cause", "Session-Timeout", 5},
	{"Acct-Terminate-Cause", "Admin-Reset", 6},
	{"Acct-Terminate-Cause", "Admin-Reboot", 7},
	{"Acct-Terminate-Cause", "Port-Error", 8},
	{"Acct-Terminate-Cause", "NAS-Error", 9},
	{"Acct-Terminate-Cause", "NAS-Request", 10},
	{"Acct-Terminate-Cause", "NAS-Reboot", 11},
}

type vendorDef struct {
	id    uint32
	name  string
	attrs []attrDef
}

var builtinVendors = []vendorDef{
	{VendorIDCisco, "Cisco", []attrDef{
		{1, "Cisco-AVPair", TypeString},
		{2, "Cisco-NAS-Port", TypeString},
	}},
	{VendorIDMicrosoft, "Microsoft", []attrDef{
		{28, "MS-Primary-DNS-Server", TypeIPAddr},
		{29, "MS-Secondary-DNS-Server", TypeIPAddr},
		{11, "MS-CHAP-Challenge", TypeOctets},
	}},
}

// Builtin はPPP NAS向けの組み込み辞書を生成する。
// 辞書ファイルの読み込みは行わない。
func Builtin() *Dictionary {
	d := New()
	for _, a := range builtinAttrs {
		mustAttr(d.AddAttr(uint8(a.id), a.name, a.typ))
	}
	for _, v := range builtinValues {
		if err := d.AddValue(d.FindAttr(v.attr), v.name, v.val); err != nil {
			panic(err)
		}
	}
	for _, vd := range builtinVendors {
		v, err := d.AddVendor(vd.id, vd.name)
		if err != nil {
			panic(err)
		}
		for _, a := range vd.attrs {
			mustAttr(d.AddVendorAttr(v, uint8(a.id), a.name, a.typ))
		}
	}
	return d
}

func mustAttr(_ *Attr, err error) {
	if err != nil {
		panic(err)
	}
}
