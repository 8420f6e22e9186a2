package radius

import "fmt"

// Code はRADIUSパケット種別を表す
type Code uint8

// RADIUS Code値（RFC 2865/2866/5176）
const (
	CodeAccessRequest      Code = 1
	CodeAccessAccept       Code = 2
	CodeAccessReject       Code = 3
	CodeAccountingRequest  Code = 4
	CodeAccountingResponse Code = 5
	CodeAccessChallenge    Code = 11
	CodeDisconnectRequest  Code = 40
	CodeDisconnectACK      Code = 41
	CodeDisconnectNAK      Code = 42
	CodeCoARequest         Code = 43
	CodeCoAACK             Code = 44
	CodeCoANAK             Code = 45
)

var codeNames = map[Code]string{
	CodeAccessRequest:      "Access-Request",
	CodeAccessAccept:       "Access-Accept",
	CodeAccessReject:       "Access-Reject",
	CodeAccountingRequest:  "Accounting-Request",
	CodeAccountingResponse: "Accounting-Response",
	CodeAccessChallenge:    "Access-Challenge",
	CodeDisconnectRequest:  "Disconnect-Request",
	CodeDisconnectACK:      "Disconnect-ACK",
	CodeDisconnectNAK:      "Disconnect-NAK",
	CodeCoARequest:         "CoA-Request",
	CodeCoAACK:             "CoA-ACK",
	CodeCoANAK:             "CoA-NAK",
}

// String はパケット種別名を返す。未知のCodeは "Unknown(n)" となる。
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// ParseCode はパケット種別名をCodeに変換する
func ParseCode(name string) (Code, bool) {
	for c, n := range codeNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// ワイヤーフォーマット定数
const (
	HeaderLen          = 20 // code(1) + id(1) + length(2) + authenticator(16)
	AuthenticatorLen   = 16
	DefaultMaxLength   = 4096 // RFC 2865 3章の上限
	TypeVendorSpecific = 26

	attrHeaderLen = 2 // type(1) + length(1)
	vendorIDLen   = 4
	maxAttrLen    = 255
)
