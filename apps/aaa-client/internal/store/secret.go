package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/model"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/valkey"
)

// secretStore はSecretStoreインターフェースの実装。
type secretStore struct {
	vc *ValkeyClient
}

// NewSecretStore は新しいSecretStoreを生成する。
func NewSecretStore(vc *ValkeyClient) SecretStore {
	return &secretStore{vc: vc}
}

// GetServer は指定されたサーバーの登録情報を取得する。
// 未登録の場合はnilとnilを返す。
func (s *secretStore) GetServer(ctx context.Context, host string) (*model.RadiusServer, error) {
	key := KeyPrefixServer + host
	cmd := s.vc.Client().HGetAll(ctx, key)
	if err := cmd.Err(); err != nil {
		cause := apperr.ErrValkeyCommand
		if valkey.IsConnectionError(err) {
			cause = apperr.ErrValkeyConnection
		}
		return nil, apperr.NewValkeyError("HGETALL", key,
			fmt.Errorf("%w: %w: %v", ErrValkeyUnavailable, cause, err))
	}
	if len(cmd.Val()) == 0 {
		return nil, nil
	}

	server := model.NewRadiusServer(host, "", "", "")
	if err := cmd.Scan(server); err != nil {
		return nil, apperr.NewValkeyError("HGETALL", key,
			fmt.Errorf("%w: %w: %v", ErrValkeyUnavailable, apperr.ErrValkeyCommand, err))
	}
	return server, nil
}

// GetServerSecret は指定されたサーバーのShared Secretを取得する。
// 未登録の場合は空文字列とnilを返す。
func (s *secretStore) GetServerSecret(ctx context.Context, host string) (string, error) {
	server, err := s.GetServer(ctx, host)
	if err != nil || !server.HasSecret() {
		return "", err
	}
	return server.Secret, nil
}
