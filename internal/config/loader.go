package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "crossing.yaml"

// LoadCrossing loads the campaign configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Whichever file is found must parse and validate; a broken file is an error,
// not a reason to fall through to the next candidate.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadFile(path)
	}

	return parseEmbedded(defaultCrossingYAML, DefaultCrossingConfig)
}

// LoadClassic loads the classic variant configuration. It is always the
// embedded one; the classic rules are not meant to be tuned.
func LoadClassic() (CrossingConfig, error) {
	return parseEmbedded(defaultClassicYAML, ClassicCrossingConfig)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (CrossingConfig, error) {
	var cfg CrossingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (CrossingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseEmbedded(data []byte, fallback func() CrossingConfig) (CrossingConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			return cfg, err
		}
		// Fallback to hardcoded if the embed does not decode
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}
