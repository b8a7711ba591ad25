package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const DefaultSavePath = "game_save.json"

// Settings хранит параметры запуска, которые не влияют на правила игры.
type Settings struct {
	SavePath string
	Seed     int64 // 0: сид из текущего времени
	LogLevel string
	LogDir   string
	Mute     bool
}

// DefaultSettings returns the settings used when no flags are given.
func DefaultSettings() Settings {
	return Settings{
		SavePath: DefaultSavePath,
		LogLevel: "info",
	}
}

// ParseFlags parses command-line arguments into Settings.
// Errors from the flag package are returned as is; usage goes to out.
func ParseFlags(name string, args []string, out io.Writer) (Settings, error) {
	s := DefaultSettings()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&s.SavePath, "save", s.SavePath, "path to the save file")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed for enemy spawns (0 = time based)")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "debug, info, warn or error")
	fs.StringVar(&s.LogDir, "log-dir", s.LogDir, "directory for log files (empty = stdout only)")
	fs.BoolVar(&s.Mute, "mute", s.Mute, "disable sound")
	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if s.SavePath == "" {
		return s, fmt.Errorf("save path must not be empty")
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return s, fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	return s, nil
}
