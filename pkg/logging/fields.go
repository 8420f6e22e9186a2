package logging

import (
	"fmt"
	"log/slog"
	"net"
)

// ログフィールド名の定数
const (
	FieldTraceID   = "trace_id"
	FieldEventID   = "event_id"
	FieldError     = "error"
	FieldLatencyMs = "latency_ms"
	FieldCode      = "code"
	FieldPacketID  = "packet_id"
	FieldPeer      = "peer"
	FieldUserName  = "user_name"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithCode はRADIUSコード名のslog.Attrを返す。
func WithCode(code fmt.Stringer) slog.Attr {
	return slog.String(FieldCode, code.String())
}

// WithPacketID はRADIUS Identifierのslog.Attrを返す。
func WithPacketID(id uint8) slog.Attr {
	return slog.Int(FieldPacketID, int(id))
}

// WithPeer は送受信相手アドレスのslog.Attrを返す。
func WithPeer(addr net.Addr) slog.Attr {
	if addr == nil {
		return slog.String(FieldPeer, "")
	}
	return slog.String(FieldPeer, addr.String())
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithUserName はマスキングされたUser-Nameのslog.Attrを返す。
func (cf *CommonFields) WithUserName(name string) slog.Attr {
	return slog.String(FieldUserName, cf.masker.UserName(name))
}

// ExchangeLogFields は要求・応答交換ログ用の共通フィールドを返す。
func (cf *CommonFields) ExchangeLogFields(traceID, eventID, userName string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		cf.WithUserName(userName),
	}
}
