package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/config"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/store"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
)

// SecretSource はValkey登録情報に基づくRADIUSサーバーのShared Secret解決を行う。
// Valkeyに登録がなければフォールバックのSecretを用いる。
// layeh.com/radius.SecretSourceインターフェースも満たす。
type SecretSource struct {
	secretStore    store.SecretStore // nilならValkeyを参照しない
	fallbackSecret []byte
}

// NewSecretSource は新しいSecretSourceを生成する
func NewSecretSource(ss store.SecretStore, fallbackSecret string) *SecretSource {
	var fb []byte
	if fallbackSecret != "" {
		fb = []byte(fallbackSecret)
	}
	return &SecretSource{
		secretStore:    ss,
		fallbackSecret: fb,
	}
}

// Secret はサーバーホストに対応するShared Secretを返す。
// 解決できない場合はapperr.ErrNoSecretを返す。
func (s *SecretSource) Secret(ctx context.Context, host string) ([]byte, error) {
	if s.secretStore != nil && host != "" {
		lookupCtx, cancel := context.WithTimeout(ctx, config.SecretLookupTimeout)
		secret, err := s.secretStore.GetServerSecret(lookupCtx, host)
		cancel()
		switch {
		case err != nil:
			slog.Warn("Valkeyサーバー検索エラー",
				"event_id", "RADIUS_SECRET_ERR",
				"server", host,
				"error", err,
			)
		case secret != "":
			return []byte(secret), nil
		}
	}

	if len(s.fallbackSecret) > 0 {
		return s.fallbackSecret, nil
	}

	slog.Warn("RADIUS Secret不明",
		"event_id", "RADIUS_NO_SECRET",
		"server", host,
	)
	return nil, fmt.Errorf("%w: server=%s", apperr.ErrNoSecret, host)
}

// RADIUSSecret はリモートアドレスに対応するShared Secretを返す
func (s *SecretSource) RADIUSSecret(ctx context.Context, remoteAddr net.Addr) ([]byte, error) {
	return s.Secret(ctx, extractHost(remoteAddr))
}

// extractHost はnet.Addrからホスト部を抽出する
func extractHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if udpAddr, ok := addr.(*net.UDPAddr); ok {
		return udpAddr.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return ""
	}
	return host
}
