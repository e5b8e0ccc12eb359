package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// current holds the process-wide active theme, mirroring the original's
// config.rs Global<Box<dyn Styler>> — a RWMutex-guarded lazily-defaulted
// cell rather than a OnceLock, since Go has no const-initializable lazy
// cell equivalent.
var current = struct {
	mu sync.RWMutex
	t  Theme
}{t: Monokai()}

// Current returns the active theme.
func Current() Theme {
	current.mu.RLock()
	defer current.mu.RUnlock()
	return current.t
}

// SetCurrent installs t as the active theme.
func SetCurrent(t Theme) {
	current.mu.Lock()
	defer current.mu.Unlock()
	current.t = t
}

// Config is the TOML-serializable persisted settings (spec's ambient
// config section), grounded in the original's misc/config.rs Config
// struct and its toml::from_str/to_string round trip.
type Config struct {
	ThemeName string `toml:"theme"`
}

// DefaultConfig matches Monokai as the startup default, as in the
// original's Theme::default() fallback.
func DefaultConfig() Config {
	return Config{ThemeName: Monokai().Name}
}

// Load parses TOML config text and returns the decoded Config.
func Load(text string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Config{}, fmt.Errorf("theme: decode config: %w", err)
	}
	if cfg.ThemeName == "" {
		cfg.ThemeName = Monokai().Name
	}
	return cfg, nil
}

// Store serializes cfg back to TOML text.
func Store(cfg Config) (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return "", fmt.Errorf("theme: encode config: %w", err)
	}
	return sb.String(), nil
}
