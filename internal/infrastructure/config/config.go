package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"mantranwebapi/internal/domain/entities"
)

// Config carries the tracker settings that are policy rather than
// deployment wiring: the status vocabulary used by the live external schema
// and the constants behind the weekly productivity and completion-forecast
// reports. Deployment wiring (URLs, keys, port) stays in env vars.
type Config struct {
	Status StatusConfig `toml:"status"`
	Report ReportConfig `toml:"report"`
}

type StatusConfig struct {
	Pending  string `toml:"pending"`
	Working  string `toml:"working"`
	Terminal string `toml:"terminal"`
}

type ReportConfig struct {
	WeeklyScreenTarget int     `toml:"weekly_screen_target"`
	HoursPerScreen     float64 `toml:"hours_per_screen"`
	HoursPerDay        float64 `toml:"hours_per_day"`
}

func Default() Config {
	return Config{
		Status: StatusConfig{
			Pending:  "Pendente",
			Working:  "Trabalhando",
			Terminal: "Finalizado",
		},
		Report: ReportConfig{
			WeeklyScreenTarget: 5,
			HoursPerScreen:     8,
			HoursPerDay:        8,
		},
	}
}

// Load reads the TOML config at path on top of defaults. A missing or empty
// file is not an error; a malformed one is.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, v := range []string{c.Status.Pending, c.Status.Working, c.Status.Terminal} {
		if strings.TrimSpace(v) == "" {
			return errors.New("status vocabulary values must be non-empty")
		}
	}
	if c.Status.Pending == c.Status.Terminal || c.Status.Working == c.Status.Terminal || c.Status.Pending == c.Status.Working {
		return errors.New("status vocabulary values must be distinct")
	}
	if c.Report.WeeklyScreenTarget <= 0 {
		return errors.New("report.weekly_screen_target must be > 0")
	}
	if c.Report.HoursPerScreen <= 0 || c.Report.HoursPerDay <= 0 {
		return errors.New("report hours constants must be > 0")
	}
	return nil
}

// Vocabulary resolves the configured spellings into the domain type.
func (c Config) Vocabulary() entities.StatusVocabulary {
	return entities.StatusVocabulary{
		Pending:  entities.Status(c.Status.Pending),
		Working:  entities.Status(c.Status.Working),
		Terminal: entities.Status(c.Status.Terminal),
	}
}
