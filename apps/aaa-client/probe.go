package main

import (
	"fmt"
	"time"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/config"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/radius"
)

// buildProbe は設定に従って疎通確認用の要求パケットを組み立てる。
// Accounting-RequestはAcct-Status-Type=Startのセッション開始通知とする。
func buildProbe(codec *radius.Codec, cfg *config.Config, id uint8, now time.Time) (*radius.Packet, error) {
	p := codec.NewPacket(cfg.Code())
	p.ID = id

	if err := fillProbe(p, cfg, now); err != nil {
		p.Free()
		return nil, fmt.Errorf("build %s: %w", p.Code, err)
	}
	return p, nil
}

func fillProbe(p *radius.Packet, cfg *config.Config, now time.Time) error {
	if cfg.ProbeUserName != "" {
		if err := p.AddString("", "User-Name", cfg.ProbeUserName); err != nil {
			return err
		}
	}
	if err := p.AddString("", "NAS-Identifier", cfg.NASIdentifier); err != nil {
		return err
	}
	if err := p.AddValue("", "NAS-Port-Type", "Virtual"); err != nil {
		return err
	}

	switch p.Code {
	case radius.CodeAccessRequest:
		// 平文で保持し、送信時にClient.Exchangeが秘匿化する
		if err := p.AddOctets("", "User-Password", []byte(cfg.ProbePassword)); err != nil {
			return err
		}
		if err := p.AddValue("", "Service-Type", "Framed-User"); err != nil {
			return err
		}
		return p.AddValue("", "Framed-Protocol", "PPP")
	case radius.CodeAccountingRequest:
		if err := p.AddValue("", "Acct-Status-Type", "Start"); err != nil {
			return err
		}
		if err := p.AddString("", "Acct-Session-Id", fmt.Sprintf("%08X", uint32(now.Unix()))); err != nil {
			return err
		}
		if err := p.AddValue("", "Acct-Authentic", "RADIUS"); err != nil {
			return err
		}
		return p.AddDate("", "Event-Timestamp", now)
	default:
		return fmt.Errorf("unsupported probe code %s", p.Code)
	}
}
