package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ReportPath string `env:"TRACKER_REPORT_PATH" envDefault:"student_reports.txt"`
	LogFile    string `env:"TRACKER_LOG_FILE"`
	ImportPath string `env:"TRACKER_IMPORT_PATH"`
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
