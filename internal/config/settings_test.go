package config

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Settings
		wantErr bool
	}{
		{"defaults", nil, DefaultSettings(), false},
		{"all flags", []string{"-save", "/tmp/s.json", "-seed", "42", "-log-level", "debug", "-log-dir", "logs", "-mute"},
			Settings{SavePath: "/tmp/s.json", Seed: 42, LogLevel: "debug", LogDir: "logs", Mute: true}, false},
		{"level is case insensitive", []string{"-log-level", "WARN"},
			Settings{SavePath: DefaultSavePath, LogLevel: "WARN"}, false},
		{"empty save path", []string{"-save", ""}, Settings{}, true},
		{"bad level", []string{"-log-level", "loud"}, Settings{}, true},
		{"unknown flag", []string{"-fullscreen"}, Settings{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags("test", tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := ParseFlags("test", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}
