// Package model は共有データモデルを提供する。
package model

// RadiusServer は要求の送信先となるRADIUSサーバーの登録情報を表す。
// Valkeyキー: server:{host}
type RadiusServer struct {
	Host   string `json:"host" redis:"-"`        // サーバーホスト（キーから補う）
	Secret string `json:"secret" redis:"secret"` // 共有シークレット
	Name   string `json:"name" redis:"name"`     // サーバー名（識別用）
	Vendor string `json:"vendor" redis:"vendor"` // ベンダー名（任意）
}

// NewRadiusServer は新しいRadiusServerを生成する。
func NewRadiusServer(host, secret, name, vendor string) *RadiusServer {
	return &RadiusServer{
		Host:   host,
		Secret: secret,
		Name:   name,
		Vendor: vendor,
	}
}

// HasSecret は共有シークレットが登録されているかを返す。
func (s *RadiusServer) HasSecret() bool {
	return s != nil && s.Secret != ""
}
