// Package main はaaa-client（RADIUS疎通確認クライアント）のエントリーポイント。
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/client"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/config"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/dict"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/radius"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		return 1
	}

	// 2. ロガー初期化（JSON形式、RADIUS_VERBOSE時はDEBUG以上）
	level := slog.LevelInfo
	if cfg.RadiusVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With("app", "aaa-client")
	slog.SetDefault(logger)

	slog.Info("aaa-client起動開始",
		"server", cfg.ServerAddr(),
		"code", cfg.ProbeCode,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 3. Secret参照先（REDIS_HOST設定時のみValkeyを使う）
	var secretStore store.SecretStore
	if cfg.ValkeyEnabled() {
		valkeyClient, err := store.NewValkeyClient(cfg)
		if err != nil {
			// RADIUS_SECRETがあれば続行する
			slog.Warn("Valkey接続失敗",
				"event_id", "VALKEY_CONN_ERR",
				"error", err,
			)
		} else {
			defer valkeyClient.Close()
			secretStore = store.NewSecretStore(valkeyClient)
			slog.Info("Valkey接続完了", "addr", cfg.ValkeyAddr())
		}
	}
	secretSource := client.NewSecretSource(secretStore, cfg.RadiusSecret)

	// 4. コーデック生成
	codec, err := radius.NewCodec(radius.Config{
		Dictionary:   dict.Builtin(),
		MaxLength:    cfg.RadiusMaxLength,
		BufferLimit:  cfg.RadiusBufferLimit,
		Verbose:      cfg.RadiusVerbose,
		MaskUserName: cfg.LogMaskUserName,
	})
	if err != nil {
		slog.Error("コーデック生成失敗", "error", err)
		return 1
	}

	// 5. UDPソケット
	conn, err := net.Dial("udp", cfg.ServerAddr())
	if err != nil {
		slog.Error("ソケット生成失敗",
			"event_id", "SOCKET_ERR",
			"server", cfg.ServerAddr(),
			"error", err,
		)
		return 1
	}
	defer conn.Close()

	// 6. クライアント
	c, err := client.New(client.Config{
		Codec:        codec,
		Conn:         conn,
		Host:         cfg.ServerHost(),
		Secrets:      secretSource,
		Timeout:      cfg.ResponseTimeout,
		MaskUserName: cfg.LogMaskUserName,
	})
	if err != nil {
		slog.Error("クライアント生成失敗", "error", err)
		return 1
	}

	// 7. プローブ要求の組み立て
	req, err := buildProbe(codec, cfg, c.NextID(), time.Now())
	if err != nil {
		slog.Error("要求組み立て失敗",
			"event_id", "PROBE_BUILD_ERR",
			"error", err,
		)
		return 1
	}
	defer req.Free()

	// 8. 交換
	reply, err := c.Exchange(ctx, req)
	if err != nil {
		slog.Error("RADIUSサーバー応答なし",
			"event_id", "PROBE_FAILED",
			"error", err,
		)
		return 1
	}
	defer reply.Free()

	slog.Info("RADIUSサーバー応答受信",
		"event_id", "PROBE_OK",
		"reply", reply,
		"dump", codec.Format(reply),
	)
	if reply.Code == radius.CodeAccessReject {
		return 2
	}
	return 0
}
