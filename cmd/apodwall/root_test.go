package main

import (
	"bytes"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("has expected subcommands", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()

		want := map[string]bool{"set": false, "init": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected subcommand %q to be registered", name)
			}
		}
	})

	t.Run("has persistent verbose flag", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()

		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand v, got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default false, got %q", flag.DefValue)
		}
	})

	t.Run("help executes without error", func(t *testing.T) {
		t.Parallel()
		cmd := NewRootCmd()

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--help"})

		if err := cmd.Execute(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if !bytes.Contains(out.Bytes(), []byte("apodwall")) {
			t.Errorf("expected help output to mention apodwall, got %q", out.String())
		}
	})
}
