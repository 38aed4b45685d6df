package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints version commit and date", func(t *testing.T) {
		t.Parallel()
		cmd := NewVersionCmd()

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, want := range []string{"apodwall version", "commit:", "built:"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("expected output to contain %q, got %q", want, out.String())
			}
		}
	})
}

func TestGetVersion(t *testing.T) {
	t.Parallel()

	t.Run("ldflags value takes priority", func(t *testing.T) {
		// Not parallel: mutates package state.
		orig := version
		defer func() { version = orig }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("expected v1.2.3, got %q", got)
		}
	})
}
