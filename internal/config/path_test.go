package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	t.Setenv("CARTLENS_TEST_DIR", "/tmp/cartlens")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty path", in: "", want: ""},
		{name: "plain path untouched", in: "/var/data", want: "/var/data"},
		{name: "tilde slash expands", in: "~/data", want: filepath.Join(home, "data")},
		{name: "bare tilde expands", in: "~", want: home},
		{name: "env var expands", in: "$CARTLENS_TEST_DIR/orders", want: "/tmp/cartlens/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
