package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		wantAddr string
		wantFile string
		wantErr  bool
	}{
		{name: "defaults", wantAddr: ":8080"},
		{name: "port from env", env: map[string]string{"PORT": "9000"}, wantAddr: ":9000"},
		{name: "addr flag wins", args: []string{"-addr", "127.0.0.1:7000"}, env: map[string]string{"PORT": "9000"}, wantAddr: "127.0.0.1:7000"},
		{name: "links from env", env: map[string]string{"SHORTLINKS_FILE": "/etc/links.json"}, wantAddr: ":8080", wantFile: "/etc/links.json"},
		{name: "links flag wins", args: []string{"-links", "flag.json"}, env: map[string]string{"SHORTLINKS_FILE": "env.json"}, wantAddr: ":8080", wantFile: "flag.json"},
		{name: "invalid port", env: map[string]string{"PORT": "http"}, wantErr: true},
		{name: "invalid log level", args: []string{"-log-level", "loud"}, wantErr: true},
		{name: "invalid log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: true},
		{name: "unknown flag", args: []string{"-db", "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args, env(tt.env))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if got := cfg.ListenAddr(); got != tt.wantAddr {
				t.Errorf("ListenAddr() = %q, want %q", got, tt.wantAddr)
			}
			if cfg.LinksFile != tt.wantFile {
				t.Errorf("LinksFile = %q, want %q", cfg.LinksFile, tt.wantFile)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("json at warn", func(t *testing.T) {
		cfg := &Config{LogLevel: "warn", LogFormat: "json"}
		var buf bytes.Buffer
		logger := cfg.Logger(&buf)

		logger.Info("hidden")
		logger.Warn("shown", "key", "tea")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info record logged at warn level: %s", out)
		}
		if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"tea"`) {
			t.Errorf("unexpected json output: %s", out)
		}
	})

	t.Run("text at debug", func(t *testing.T) {
		cfg := &Config{LogLevel: "DEBUG", LogFormat: "text"}
		var buf bytes.Buffer
		cfg.Logger(&buf).Debug("lookup", "key", "b")

		if out := buf.String(); !strings.Contains(out, "msg=lookup") || !strings.Contains(out, "key=b") {
			t.Errorf("unexpected text output: %s", out)
		}
	})
}
