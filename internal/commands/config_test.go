package commands

import (
	"strings"
	"testing"

	"github.com/dincharya-ai/cli/internal/config"
)

func TestApplyConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(cfg config.Config) bool
	}{
		{
			name:  "base_url",
			key:   "base_url",
			value: "http://example.com:9000",
			check: func(cfg config.Config) bool { return cfg.BaseURL == "http://example.com:9000" },
		},
		{
			name:    "empty base_url",
			key:     "base_url",
			value:   "",
			wantErr: true,
		},
		{
			name:  "user_id",
			key:   "user_id",
			value: "alice",
			check: func(cfg config.Config) bool { return cfg.UserID == "alice" },
		},
		{
			name:  "location",
			key:   "location",
			value: "19.0760, 72.8777",
			check: func(cfg config.Config) bool {
				return cfg.Location.Lat == 19.0760 && cfg.Location.Lon == 72.8777
			},
		},
		{
			name:    "bad location",
			key:     "location",
			value:   "somewhere",
			wantErr: true,
		},
		{
			name:  "history_limit",
			key:   "history_limit",
			value: "25",
			check: func(cfg config.Config) bool { return cfg.HistoryLimit == 25 },
		},
		{
			name:    "negative history_limit",
			key:     "history_limit",
			value:   "-1",
			wantErr: true,
		},
		{
			name:  "verbose",
			key:   "verbose",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.Verbose },
		},
		{
			name:    "bad verbose",
			key:     "verbose",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:  "copy_to_clipboard",
			key:   "copy_to_clipboard",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.CopyToClipboard },
		},
		{
			name:  "speech_command",
			key:   "speech_command",
			value: "whisper-cli --once",
			check: func(cfg config.Config) bool { return cfg.SpeechCommand == "whisper-cli --once" },
		},
		{
			name:    "unknown key",
			key:     "nonsense",
			value:   "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyConfigValue(&cfg, tt.key, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("config not updated as expected: %+v", cfg)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	loc, err := parseLocation("28.6139,77.2090")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Lat != 28.6139 || loc.Lon != 77.2090 {
		t.Errorf("unexpected location: %+v", loc)
	}

	for _, bad := range []string{"", "1", "1,2,3", "a,b"} {
		if _, err := parseLocation(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestConfigSetRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := config.DefaultConfig()
	if err := applyConfigValue(&cfg, "user_id", "bob"); err != nil {
		t.Fatalf("applyConfigValue failed: %v", err)
	}
	if err := config.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.UserID != "bob" {
		t.Errorf("expected user_id bob, got %q", loaded.UserID)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if !strings.HasSuffix(path, ".dincharya/config.json") {
		t.Errorf("unexpected config path: %s", path)
	}
}
