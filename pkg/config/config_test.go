package config

import (
	"testing"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
)

func TestLoadFromEnv(t *testing.T) {
	logger.SetLevel(logger.LevelOff)

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "missing token",
			env:     map[string]string{"BOT_TOKEN": ""},
			wantErr: true,
		},
		{
			name: "defaults",
			env:  map[string]string{"BOT_TOKEN": "123:abc"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.DataDir != "./data" || cfg.GCInterval != 10*time.Minute {
					t.Errorf("unexpected defaults %+v", cfg)
				}
				if cfg.LLMEnabled() || cfg.OwnerChatID != 0 || cfg.LogLevel != logger.LevelInfo {
					t.Errorf("unexpected defaults %+v", cfg)
				}
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"BOT_TOKEN":      "123:abc",
				"OPENAI_API_KEY": "sk-test",
				"OWNER_CHAT_ID":  "-1001",
				"DATA_DIR":       "/var/lib/pantrychef",
				"LOG_LEVEL":      "debug",
				"GC_INTERVAL":    "1h",
			},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.LLMEnabled() || cfg.OwnerChatID != -1001 || cfg.DataDir != "/var/lib/pantrychef" {
					t.Errorf("unexpected config %+v", cfg)
				}
				if cfg.LogLevel != logger.LevelDebug || cfg.GCInterval != time.Hour {
					t.Errorf("unexpected config %+v", cfg)
				}
			},
		},
		{
			name:    "bad owner",
			env:     map[string]string{"BOT_TOKEN": "123:abc", "OWNER_CHAT_ID": "me"},
			wantErr: true,
		},
		{
			name:    "bad interval",
			env:     map[string]string{"BOT_TOKEN": "123:abc", "GC_INTERVAL": "often"},
			wantErr: true,
		},
	}

	keys := []string{"BOT_TOKEN", "OPENAI_API_KEY", "OPENAI_API_BASE", "OPENAI_MODEL", "OWNER_CHAT_ID", "DATA_DIR", "LOG_LEVEL", "GC_INTERVAL"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range keys {
				t.Setenv(k, tt.env[k])
			}
			cfg, err := LoadFromEnv()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if got := redact("1234567890"); got != "12345678...REDACTED..." {
		t.Errorf("got %q", got)
	}
	if got := redact("short"); got != "...REDACTED..." {
		t.Errorf("got %q", got)
	}
	if got := redact(""); got != "" {
		t.Errorf("got %q", got)
	}
}
