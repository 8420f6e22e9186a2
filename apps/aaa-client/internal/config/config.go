// Package config は環境変数からaaa-clientの設定を読み込む。
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/radius"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/valkey"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// RADIUSサーバー設定
	RadiusServer string `envconfig:"RADIUS_SERVER" required:"true"`
	RadiusSecret string `envconfig:"RADIUS_SECRET"`

	// コーデック設定
	RadiusMaxLength   int  `envconfig:"RADIUS_MAX_LENGTH" default:"4096"`
	RadiusVerbose     bool `envconfig:"RADIUS_VERBOSE" default:"false"`
	RadiusBufferLimit int  `envconfig:"RADIUS_BUFFER_LIMIT" default:"64"`

	// プローブ要求設定
	ProbeCode       string        `envconfig:"PROBE_CODE" default:"Accounting-Request"`
	ProbeUserName   string        `envconfig:"PROBE_USER_NAME"`
	ProbePassword   string        `envconfig:"PROBE_PASSWORD"`
	NASIdentifier   string        `envconfig:"NAS_IDENTIFIER" default:"aaa-client"`
	ResponseTimeout time.Duration `envconfig:"RESPONSE_TIMEOUT" default:"3s"`

	// Valkey接続設定（REDIS_HOST未設定ならSecret参照を行わない）
	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPass string `envconfig:"REDIS_PASS"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// ログ設定
	LogMaskUserName bool `envconfig:"LOG_MASK_USERNAME" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyEnabled はValkeyによるSecret参照が有効かを返す
func (c *Config) ValkeyEnabled() bool {
	return c.RedisHost != ""
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return valkey.BuildAddr(c.RedisHost, c.RedisPort)
}

// Code はプローブ要求のRADIUSコードを返す
func (c *Config) Code() radius.Code {
	code, _ := radius.ParseCode(c.ProbeCode)
	return code
}

// ServerAddr はRADIUSサーバーの "host:port" を返す。
// ポート省略時はプローブ要求の種別に応じた既定ポートを補う。
func (c *Config) ServerAddr() string {
	if _, _, err := net.SplitHostPort(c.RadiusServer); err == nil {
		return c.RadiusServer
	}
	port := DefaultAcctPort
	if c.Code() == radius.CodeAccessRequest {
		port = DefaultAuthPort
	}
	return net.JoinHostPort(strings.Trim(c.RadiusServer, "[]"), port)
}

// ServerHost はRADIUSサーバーのホスト部を返す（Secret検索キーに用いる）
func (c *Config) ServerHost() string {
	host, _, err := net.SplitHostPort(c.ServerAddr())
	if err != nil {
		return c.RadiusServer
	}
	return host
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if strings.TrimSpace(c.RadiusServer) == "" {
		return apperr.NewValidationError("RADIUS_SERVER", "must not be empty")
	}
	if host, port, err := net.SplitHostPort(c.RadiusServer); err == nil {
		if host == "" {
			return apperr.NewValidationError("RADIUS_SERVER", "host must not be empty")
		}
		if _, ok := valkey.ParsePort(port); !ok {
			return apperr.NewValidationError("RADIUS_SERVER", "invalid port "+port)
		}
	}
	if c.RadiusMaxLength < MinPacketLength || c.RadiusMaxLength > MaxPacketLength {
		return apperr.NewValidationError("RADIUS_MAX_LENGTH",
			fmt.Sprintf("must be between %d and %d", MinPacketLength, MaxPacketLength))
	}
	if c.RadiusBufferLimit <= 0 {
		return apperr.NewValidationError("RADIUS_BUFFER_LIMIT", "must be positive")
	}

	code, ok := radius.ParseCode(c.ProbeCode)
	if !ok || (code != radius.CodeAccessRequest && code != radius.CodeAccountingRequest) {
		return apperr.NewValidationError("PROBE_CODE", "must be Access-Request or Accounting-Request")
	}
	if code == radius.CodeAccessRequest {
		if c.ProbeUserName == "" {
			return apperr.NewValidationError("PROBE_USER_NAME", "required for Access-Request")
		}
		if c.ProbePassword == "" {
			return apperr.NewValidationError("PROBE_PASSWORD", "required for Access-Request")
		}
		if len(c.ProbePassword) > radius.MaxPasswordLen {
			return apperr.NewValidationError("PROBE_PASSWORD",
				fmt.Sprintf("must be at most %d bytes", radius.MaxPasswordLen))
		}
	}
	if strings.TrimSpace(c.NASIdentifier) == "" {
		return apperr.NewValidationError("NAS_IDENTIFIER", "must not be empty")
	}
	if c.ResponseTimeout <= 0 {
		return apperr.NewValidationError("RESPONSE_TIMEOUT", "must be positive")
	}

	if c.ValkeyEnabled() {
		if _, ok := valkey.ParsePort(c.RedisPort); !ok {
			return apperr.NewValidationError("REDIS_PORT", "invalid port "+c.RedisPort)
		}
		if c.RedisDB < 0 {
			return apperr.NewValidationError("REDIS_DB", "must not be negative")
		}
	} else if c.RadiusSecret == "" {
		return apperr.NewValidationError("RADIUS_SECRET", "required when REDIS_HOST is not set")
	}
	return nil
}
