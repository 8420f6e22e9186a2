package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/config"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/mocks"
	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/store"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/apperr"
	"go.uber.org/mock/gomock"
	layeh "layeh.com/radius"
)

var _ layeh.SecretSource = (*SecretSource)(nil)

func TestSecretSource(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(m *mocks.MockSecretStore)
		fallback   string
		wantSecret string
		wantErr    error
	}{
		{
			name: "from valkey",
			setup: func(m *mocks.MockSecretStore) {
				m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.1").Return("valkeySecret", nil)
			},
			fallback:   "fallback",
			wantSecret: "valkeySecret",
		},
		{
			name: "not registered uses fallback",
			setup: func(m *mocks.MockSecretStore) {
				m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.1").Return("", nil)
			},
			fallback:   "fallback",
			wantSecret: "fallback",
		},
		{
			name: "valkey error uses fallback",
			setup: func(m *mocks.MockSecretStore) {
				m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.1").
					Return("", store.ErrValkeyUnavailable)
			},
			fallback:   "fallback",
			wantSecret: "fallback",
		},
		{
			name: "valkey error without fallback",
			setup: func(m *mocks.MockSecretStore) {
				m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.1").
					Return("", store.ErrValkeyUnavailable)
			},
			wantErr: apperr.ErrNoSecret,
		},
		{
			name: "not registered without fallback",
			setup: func(m *mocks.MockSecretStore) {
				m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.1").Return("", nil)
			},
			wantErr: apperr.ErrNoSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockSecretStore(ctrl)
			tt.setup(m)

			ss := NewSecretSource(m, tt.fallback)
			secret, err := ss.Secret(context.Background(), "192.0.2.1")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Secret failed: %v", err)
			}
			if string(secret) != tt.wantSecret {
				t.Errorf("Secret = %q, want %q", secret, tt.wantSecret)
			}
		})
	}
}

func TestSecretSource_NoStore(t *testing.T) {
	ss := NewSecretSource(nil, "fallback")
	secret, err := ss.Secret(context.Background(), "192.0.2.1")
	if err != nil {
		t.Fatalf("Secret failed: %v", err)
	}
	if string(secret) != "fallback" {
		t.Errorf("Secret = %q, want %q", secret, "fallback")
	}

	empty := NewSecretSource(nil, "")
	if _, err := empty.Secret(context.Background(), "192.0.2.1"); !errors.Is(err, apperr.ErrNoSecret) {
		t.Errorf("error = %v, want ErrNoSecret", err)
	}
}

func TestSecretSource_RADIUSSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSecretStore(ctrl)
	m.EXPECT().GetServerSecret(gomock.Any(), "192.0.2.7").Return("perServer", nil)
	m.EXPECT().GetServerSecret(gomock.Any(), "2001:db8::7").Return("", nil)

	ss := NewSecretSource(m, "fallback")
	ctx := context.Background()

	secret, err := ss.RADIUSSecret(ctx, &net.UDPAddr{IP: net.ParseIP("192.0.2.7"), Port: 1813})
	if err != nil || string(secret) != "perServer" {
		t.Errorf("RADIUSSecret(v4) = %q, %v, want %q", secret, err, "perServer")
	}
	secret, err = ss.RADIUSSecret(ctx, &net.UDPAddr{IP: net.ParseIP("2001:db8::7"), Port: 1813})
	if err != nil || string(secret) != "fallback" {
		t.Errorf("RADIUSSecret(v6) = %q, %v, want %q", secret, err, "fallback")
	}
	// アドレス不明ならValkeyを参照しない
	secret, err = ss.RADIUSSecret(ctx, nil)
	if err != nil || string(secret) != "fallback" {
		t.Errorf("RADIUSSecret(nil) = %q, %v, want %q", secret, err, "fallback")
	}
}

func TestSecretSource_FromValkey(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.HSet(store.KeyPrefixServer+"radius.example.net", store.FieldSecret, "valkeySecret")

	host, port, err := net.SplitHostPort(mr.Addr())
	if err != nil {
		t.Fatalf("SplitHostPort failed: %v", err)
	}
	vc, err := store.NewValkeyClient(&config.Config{RedisHost: host, RedisPort: port})
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	defer vc.Close()

	ss := NewSecretSource(store.NewSecretStore(vc), "fallback")

	secret, err := ss.Secret(context.Background(), "radius.example.net")
	if err != nil {
		t.Fatalf("Secret failed: %v", err)
	}
	if string(secret) != "valkeySecret" {
		t.Errorf("Secret = %q, want %q", secret, "valkeySecret")
	}

	secret, err = ss.Secret(context.Background(), "other.example.net")
	if err != nil {
		t.Fatalf("Secret failed: %v", err)
	}
	if string(secret) != "fallback" {
		t.Errorf("Secret = %q, want %q", secret, "fallback")
	}
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want string
	}{
		{"nil", nil, ""},
		{"udp v4", &net.UDPAddr{IP: net.ParseIP("10.0.0.1"), Port: 1812}, "10.0.0.1"},
		{"tcp", &net.TCPAddr{IP: net.ParseIP("10.0.0.2"), Port: 1812}, "10.0.0.2"},
		{"no port", &net.IPAddr{IP: net.ParseIP("10.0.0.3")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractHost(tt.addr); got != tt.want {
				t.Errorf("extractHost() = %q, want %q", got, tt.want)
			}
		})
	}
}
