package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGrowthRate  = 1.5
	DefaultInitial     = 100.0
	DefaultTStart      = 0.0
	DefaultTFinal      = 1.0
	DefaultStep        = 0.2
	DefaultCurvePoints = 100
)

// Config holds the parameters of one comparison run: the exponential model
// dy/dt = k*y with y(t0) = y0, integrated over [t0, t_final] with fixed
// Euler step h. CurvePoints sets the resolution of the smooth reference
// curve used for charts.
type Config struct {
	K           float64 `yaml:"k"`
	Y0          float64 `yaml:"y0"`
	T0          float64 `yaml:"t0"`
	TFinal      float64 `yaml:"t_final"`
	H           float64 `yaml:"h"`
	CurvePoints int     `yaml:"curve_points"`
}

func DefaultConfig() *Config {
	return &Config{
		K:           DefaultGrowthRate,
		Y0:          DefaultInitial,
		T0:          DefaultTStart,
		TFinal:      DefaultTFinal,
		H:           DefaultStep,
		CurvePoints: DefaultCurvePoints,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects parameters the integrator cannot accept, giving the
// caller a configuration-level message before any work starts.
func (c *Config) Validate() error {
	if c.H <= 0 {
		return fmt.Errorf("config: h must be positive, got %g", c.H)
	}
	if c.TFinal < c.T0 {
		return fmt.Errorf("config: t_final %g precedes t0 %g", c.TFinal, c.T0)
	}
	if c.CurvePoints < 2 {
		return fmt.Errorf("config: curve_points must be at least 2, got %d", c.CurvePoints)
	}
	return nil
}
