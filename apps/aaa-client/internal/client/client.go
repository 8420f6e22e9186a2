// Package client はRADIUSサーバーとの要求・応答交換を提供する。
package client

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/radius"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/transport"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/logging"
)

// Config はClientの設定を保持する
type Config struct {
	Codec        *radius.Codec // パケットの符号化・復号（必須）
	Conn         net.Conn      // RADIUSサーバーへ接続済みのUDPソケット（必須）
	Host         string        // Secret参照に用いるサーバーホスト
	Secrets      *SecretSource // Shared Secretの解決（必須）
	Timeout      time.Duration // 応答待ち時間（0ならctxの期限のみ）
	MaskUserName bool          // ログ中のUser-Nameをマスキングする
}

// Client は1台のRADIUSサーバーと要求・応答を交換する。
// 再送は行わない。
type Client struct {
	codec   *radius.Codec
	tr      *transport.Transport
	conn    net.Conn
	host    string
	secrets *SecretSource
	timeout time.Duration
	fields  *logging.CommonFields
	nextID  atomic.Uint32
}

// New は新しいClientを生成する
func New(cfg Config) (*Client, error) {
	if cfg.Codec == nil || cfg.Conn == nil || cfg.Secrets == nil {
		return nil, errors.New("client: codec, conn and secrets are required")
	}
	if cfg.Conn.RemoteAddr() == nil {
		return nil, errors.New("client: conn must be connected")
	}
	c := &Client{
		codec:   cfg.Codec,
		tr:      transport.New(cfg.Codec),
		conn:    cfg.Conn,
		host:    cfg.Host,
		secrets: cfg.Secrets,
		timeout: cfg.Timeout,
		fields:  logging.NewCommonFields(logging.NewMasker(cfg.MaskUserName)),
	}
	var seed [1]byte
	_, _ = rand.Read(seed[:])
	c.nextID.Store(uint32(seed[0]))
	return c, nil
}

// NextID は要求に割り当てるIdentifierを返す
func (c *Client) NextID() uint8 {
	return uint8(c.nextID.Add(1))
}

// Exchange は要求パケットを送信し、対応する応答を待って返す。
//
// pは未Buildであること。Access-RequestにはランダムなRequest Authenticatorを、
// Accounting/Disconnect/CoA要求には署名済みのRequest Authenticatorを設定してから送信する。
// Access-RequestのUser-Passwordは平文として扱い、送信前に秘匿化した値へ置き換える。
// Identifierが一致しない応答、復号できない応答、Response Authenticatorが不正な応答は
// 読み捨てて待機を続ける。
// 失敗時は*apperr.ExchangeErrorを返す。期限切れはapperr.ErrResponseTimeout、
// 到達不能通知はapperr.ErrServerRefusedをラップする。
// 返された応答は呼び出し元がFreeする。
func (c *Client) Exchange(ctx context.Context, p *radius.Packet) (*radius.Packet, error) {
	traceID := uuid.New().String()
	start := time.Now()
	server := c.conn.RemoteAddr().String()

	var userName string
	if a, ok := p.FindAttr("", "User-Name"); ok {
		userName = a.Value().Text()
	}

	fail := func(err error) error {
		slog.Error("RADIUS交換失敗",
			append(c.fields.ExchangeLogFields(traceID, "RADIUS_EXCHANGE_ERR", userName),
				logging.WithCode(p.Code),
				logging.WithPacketID(p.ID),
				logging.WithLatency(time.Since(start).Milliseconds()),
				logging.WithError(err),
			)...,
		)
		return apperr.NewExchangeError(server, p.Code.String(), p.ID, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	secret, err := c.secrets.Secret(ctx, c.host)
	if err != nil {
		return nil, fail(err)
	}

	if p.Code == radius.CodeAccessRequest {
		auth, err := radius.NewRequestAuthenticator()
		if err != nil {
			return nil, fail(err)
		}
		p.Authenticator = auth

		if a, ok := p.FindAttr("", "User-Password"); ok {
			hidden, err := radius.HidePassword(a.Value().Octets(), secret, auth)
			if err != nil {
				return nil, fail(err)
			}
			if err := p.ChangeOctets("", "User-Password", hidden); err != nil {
				return nil, fail(err)
			}
		}
	}
	wire, err := c.codec.Build(p)
	if err != nil {
		return nil, fail(err)
	}
	switch p.Code {
	case radius.CodeAccountingRequest, radius.CodeDisconnectRequest, radius.CodeCoARequest:
		auth, err := radius.SignRequest(wire, secret)
		if err != nil {
			return nil, fail(err)
		}
		p.Authenticator = auth
	}

	if err := c.tr.Send(c.conn, p, nil); err != nil {
		return nil, fail(exchangeCause(err))
	}
	slog.Debug("RADIUS要求送信",
		append(c.fields.ExchangeLogFields(traceID, "RADIUS_REQUEST_SENT", userName),
			logging.WithCode(p.Code),
			logging.WithPacketID(p.ID),
			"server", server,
		)...,
	)

	verify := func(raw []byte) error {
		return radius.VerifyResponse(raw, p.Authenticator, secret)
	}
	for {
		if err := c.tr.WaitReadable(ctx, c.conn); err != nil {
			return nil, fail(exchangeCause(err))
		}
		reply, _, err := c.tr.Recv(c.conn, verify)
		switch {
		case err == nil:
		case errors.Is(err, transport.ErrWouldBlock),
			errors.Is(err, radius.ErrMalformedPacket),
			errors.Is(err, radius.ErrBadAuthenticator):
			continue
		default:
			return nil, fail(exchangeCause(err))
		}

		if reply.ID != p.ID {
			slog.Debug("Identifier不一致の応答を破棄",
				logging.WithTraceID(traceID),
				logging.WithEventID("RADIUS_ID_MISMATCH"),
				logging.WithPacketID(reply.ID),
				"want_id", p.ID,
			)
			reply.Free()
			continue
		}

		slog.Info("RADIUS交換完了",
			append(c.fields.ExchangeLogFields(traceID, "RADIUS_EXCHANGE_OK", userName),
				logging.WithCode(reply.Code),
				logging.WithPacketID(reply.ID),
				logging.WithLatency(time.Since(start).Milliseconds()),
				"request_code", p.Code.String(),
			)...,
		)
		return reply, nil
	}
}

// exchangeCause は送受信エラーを交換失敗の原因へ分類する
func exchangeCause(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", apperr.ErrResponseTimeout, err)
	case errors.Is(err, transport.ErrConnRefused):
		return fmt.Errorf("%w: %w", apperr.ErrServerRefused, err)
	default:
		return err
	}
}
