// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"fmt"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/config"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/valkey"
	"github.com/redis/go-redis/v9"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
// プローブは単発で終了するため、接続プールは最小限とする。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	opts := valkey.DefaultOptions().
		WithAddr(cfg.ValkeyAddr()).
		WithPassword(cfg.RedisPass).
		WithDB(cfg.RedisDB).
		WithTimeouts(config.ValkeyConnectTimeout, config.ValkeyReadTimeout, config.ValkeyWriteTimeout).
		WithPool(config.ValkeyPoolSize, config.ValkeyMinIdleConns).
		WithRetries(config.ValkeyMaxRetries, config.ValkeyMinRetryBackoff, config.ValkeyMaxRetryBackoff)

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, apperr.NewValkeyError("PING", "",
			fmt.Errorf("%w: failed to connect to Valkey: %w", apperr.ErrValkeyConnection, err))
	}
	return &ValkeyClient{client: client}, nil
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}
