package configs

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	calculatorService "github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/service"
	helper "github.com/harshitbisht07/Attendance-Optimization-System/internals/helpers"
)

// Settings are the runtime knobs that can change without a restart.
type Settings struct {
	// DefaultThreshold is used when a request omits threshold.
	DefaultThreshold float64 `yaml:"default_threshold" validate:"gte=0,lte=100"`
}

var current atomic.Pointer[Settings]

func init() {
	current.Store(defaultSettings())
}

func defaultSettings() *Settings {
	return &Settings{DefaultThreshold: calculatorService.DefaultThreshold}
}

// Current returns the active settings snapshot. Never nil.
func Current() *Settings {
	return current.Load()
}

// Apply swaps the active settings.
func Apply(s *Settings) {
	if s == nil {
		s = defaultSettings()
	}
	current.Store(s)
}

// LoadSettings reads the YAML file at path. Missing fields keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %q: %w", path, err)
	}

	s := defaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("settings: parse yaml: %w", err)
	}

	if err := helper.Validate.Struct(s); err != nil {
		return nil, fmt.Errorf("settings: default_threshold %v is out of range [0, 100]", s.DefaultThreshold)
	}

	return s, nil
}
