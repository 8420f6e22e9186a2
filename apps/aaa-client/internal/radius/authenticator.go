package radius

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// MaxPasswordLen はUser-Passwordの平文の上限（RFC 2865 5.2章）
const MaxPasswordLen = 128

// NewRequestAuthenticator はAccess-Request用のランダムなRequest Authenticatorを生成する（RFC 2865 3章）
func NewRequestAuthenticator() ([AuthenticatorLen]byte, error) {
	var auth [AuthenticatorLen]byte
	if _, err := rand.Read(auth[:]); err != nil {
		return auth, fmt.Errorf("radius: generate authenticator: %w", err)
	}
	return auth, nil
}

// SignRequest はBuild済みのAccounting/Disconnect/CoA要求にRequest Authenticatorを書き込む（RFC 2866 3章）。
// 計算式: MD5(Code + ID + Length + 16 zero octets + Attributes + Secret)
// 書き込んだ値を返す。呼び出し元はPacket.Authenticatorにも反映すること。
func SignRequest(wire, secret []byte) ([AuthenticatorLen]byte, error) {
	var auth [AuthenticatorLen]byte
	if len(wire) < HeaderLen {
		return auth, fmt.Errorf("%w: %w: %d bytes", ErrMalformedPacket, ErrShortPacket, len(wire))
	}
	clear(wire[4:HeaderLen])
	h := md5.New()
	h.Write(wire)
	h.Write(secret)
	copy(auth[:], h.Sum(nil))
	copy(wire[4:HeaderLen], auth[:])
	return auth, nil
}

// VerifyResponse は応答のResponse Authenticatorを検証する（RFC 2865 3章）。
// 計算式: MD5(Code + ID + Length + RequestAuth + Attributes + Secret)
// replyは受信した生のバイト列で、Lengthフィールドより後ろは無視する。
func VerifyResponse(reply []byte, requestAuth [AuthenticatorLen]byte, secret []byte) error {
	if len(reply) < HeaderLen {
		return fmt.Errorf("%w: %w: %d bytes", ErrMalformedPacket, ErrShortPacket, len(reply))
	}
	length := int(binary.BigEndian.Uint16(reply[2:4]))
	if length < HeaderLen || length > len(reply) {
		return fmt.Errorf("%w: %w: length=%d", ErrMalformedPacket, ErrLengthMismatch, length)
	}

	h := md5.New()
	h.Write(reply[:4])
	h.Write(requestAuth[:])
	h.Write(reply[HeaderLen:length])
	h.Write(secret)
	expected := h.Sum(nil)

	if subtle.ConstantTimeCompare(reply[4:HeaderLen], expected) != 1 {
		return ErrBadAuthenticator
	}
	return nil
}

// HidePassword はUser-Passwordの平文を秘匿化する（RFC 2865 5.2章）。
// 平文は16バイト境界までNULで埋め、16バイトごとに
// MD5(Secret + 直前の暗号ブロック) との排他的論理和をとる。先頭ブロックはRequest Authenticatorを用いる。
func HidePassword(password, secret []byte, requestAuth [AuthenticatorLen]byte) ([]byte, error) {
	if len(password) > MaxPasswordLen {
		return nil, fmt.Errorf("%w: User-Password (%d bytes)", ErrValueTooLong, len(password))
	}
	n := (len(password) + md5.Size - 1) / md5.Size * md5.Size
	if n == 0 {
		n = md5.Size
	}
	out := make([]byte, n)
	copy(out, password)

	prev := requestAuth[:]
	for i := 0; i < n; i += md5.Size {
		h := md5.New()
		h.Write(secret)
		h.Write(prev)
		b := h.Sum(nil)
		for j := range md5.Size {
			out[i+j] ^= b[j]
		}
		prev = out[i : i+md5.Size]
	}
	return out, nil
}
