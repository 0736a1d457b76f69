package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 800

	DefaultArcs  = 2000
	DefaultStars = 1000

	DefaultMinPlanets = 2
	DefaultMaxPlanets = 6

	DefaultZoom = 2.0
)

type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	Seed       int64   `yaml:"seed"` // 0 means time-based
	Zoom       float64 `yaml:"zoom"`
	Arcs       int     `yaml:"arcs"`
	Stars      int     `yaml:"stars"`
	MinPlanets int     `yaml:"min_planets"`
	MaxPlanets int     `yaml:"max_planets"`
}

func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Zoom:       DefaultZoom,
		Arcs:       DefaultArcs,
		Stars:      DefaultStars,
		MinPlanets: DefaultMinPlanets,
		MaxPlanets: DefaultMaxPlanets,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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
