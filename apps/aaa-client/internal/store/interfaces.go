package store

import (
	"context"

	"github.com/oyaguma3/pppoe-aaa-client/pkg/model"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_secret_store.go -package=mocks

// SecretStore はRADIUSサーバーのShared Secretへのアクセスを定義する
type SecretStore interface {
	// GetServer は指定されたサーバーの登録情報を取得する
	// 未登録の場合はnilとnilを返す
	GetServer(ctx context.Context, host string) (*model.RadiusServer, error)
	// GetServerSecret は指定されたサーバーのShared Secretを取得する
	// 未登録の場合は空文字列とnilを返す
	GetServerSecret(ctx context.Context, host string) (string, error)
}
