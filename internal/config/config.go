// Package config loads the app configuration: rule variant toggles, the
// human seat, the AI turn delay and an optional RNG seed. Values come from
// an optional JSON file with environment overrides; a .env file is picked
// up automatically.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	_ "github.com/joho/godotenv/autoload"
)

// AppConfig is the configuration for a terminal match.
type AppConfig struct {
	UseCriticals bool   `json:"use_criticals"`
	UseSchleck   bool   `json:"use_schleck"`
	UseBlind     bool   `json:"use_blind"`
	HumanSeat    int    `json:"human_seat"`
	AIDelayMS    int    `json:"ai_delay_ms"`
	Seed         uint64 `json:"seed"` // 0 means non-deterministic
}

var (
	cfg      *AppConfig
	loadOnce sync.Once
	loadErr  error
)

func defaults() *AppConfig {
	return &AppConfig{
		UseCriticals: true,
		UseSchleck:   true,
		UseBlind:     false,
		HumanSeat:    0,
		AIDelayMS:    600,
	}
}

// Load reads the configuration once. The JSON file at path (or the
// WATTEN_CONFIG path) is optional; environment variables override it.
func Load(path string) (*AppConfig, error) {
	loadOnce.Do(func() {
		c := defaults()

		if env := os.Getenv("WATTEN_CONFIG"); env != "" {
			path = env
		}
		if path != "" {
			data, err := os.ReadFile(path)
			switch {
			case err == nil:
				if err := json.Unmarshal(data, c); err != nil {
					loadErr = fmt.Errorf("failed to parse config %s: %w", path, err)
					return
				}
			case !os.IsNotExist(err):
				loadErr = fmt.Errorf("failed to read config %s: %w", path, err)
				return
			}
		}

		applyEnv(c)
		cfg = c
	})
	return cfg, loadErr
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("WATTEN_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("WATTEN_HUMAN_SEAT"); v != "" {
		if seat, err := strconv.Atoi(v); err == nil && seat >= 0 && seat < 4 {
			c.HumanSeat = seat
		}
	}
	if v := os.Getenv("WATTEN_AI_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			c.AIDelayMS = ms
		}
	}
}
