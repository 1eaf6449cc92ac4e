package chart

import (
	"io"
	"log"

	"dasa.cc/cartesian/geom"
	"dasa.cc/cartesian/hit"
	"dasa.cc/cartesian/zoom"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes the environment variables read by ConfigFromEnv.
const EnvPrefix = "CHART"

// Config holds the initial settings of a Chart. Variables are named after
// the envconfig tags, for example CHART_ZOOM_MODE=both or
// CHART_DRAW_MARGIN_LEFT=40.
type Config struct {
	FindingStrategy hit.Strategy `envconfig:"FINDING_STRATEGY" default:"automatic"`
	ZoomMode        zoom.Mode    `envconfig:"ZOOM_MODE" default:"none"`
	ZoomSpeed       float64      `envconfig:"ZOOM_SPEED" default:"1"`
	MatchRatio      bool         `envconfig:"MATCH_RATIO" default:"false"`

	// DrawMargin insets the plot area from the chart bounds.
	DrawMargin geom.Insets `envconfig:"DRAW_MARGIN"`

	// Logger receives layout diagnostics; nil discards them.
	Logger *log.Logger `ignored:"true"`
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		FindingStrategy: hit.Automatic,
		ZoomMode:        zoom.None,
		ZoomSpeed:       1,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by the environment.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) logger() *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return log.New(io.Discard, "", 0)
}
