package config

import (
	"encoding/json"
	"os"

	"github.com/esimov/needlework"
	"github.com/esimov/needlework/internal/logging"
	"github.com/pkg/errors"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "needlework.json"

// Config represents the configuration file structure. Unset fields keep the
// defaults of the destination format.
type Config struct {
	LogLevel     string   `json:"log_level"`
	MaxStitch    *float64 `json:"max_stitch"`
	MaxJump      *float64 `json:"max_jump"`
	Round        *bool    `json:"round"`
	ExplicitTrim *bool    `json:"explicit_trim"`
	WritesSpeeds *bool    `json:"writes_speeds"`
	LongStitch   string   `json:"long_stitch"`
	Sequin       string   `json:"sequin"`
}

var longStitchNames = map[string]needlework.LongStitchContingency{
	"none":        needlework.LongStitchNone,
	"jump_needle": needlework.LongStitchJumpNeedle,
	"sew_to":      needlework.LongStitchSewTo,
}

var sequinNames = map[string]needlework.SequinContingency{
	"utilize": needlework.SequinUtilize,
	"jump":    needlework.SequinJump,
	"stitch":  needlework.SequinStitch,
	"remove":  needlework.SequinRemove,
}

// Load loads configuration from path. A missing file yields an empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open config")
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", path)
	}
	if config.LogLevel != "" && !logging.ValidLevel(config.LogLevel) {
		return nil, errors.Errorf("unknown log level %q", config.LogLevel)
	}
	return &config, nil
}

// Apply overlays the configured fields on s.
func (c *Config) Apply(s *needlework.EncoderSettings) error {
	if c.MaxStitch != nil {
		if *c.MaxStitch <= 0 {
			return errors.Errorf("max_stitch must be positive, got %v", *c.MaxStitch)
		}
		s.MaxStitch = *c.MaxStitch
	}
	if c.MaxJump != nil {
		if *c.MaxJump <= 0 {
			return errors.Errorf("max_jump must be positive, got %v", *c.MaxJump)
		}
		s.MaxJump = *c.MaxJump
	}
	if c.Round != nil {
		s.Round = *c.Round
	}
	if c.ExplicitTrim != nil {
		s.ExplicitTrim = *c.ExplicitTrim
	}
	if c.WritesSpeeds != nil {
		s.WritesSpeeds = *c.WritesSpeeds
	}
	if c.LongStitch != "" {
		v, ok := longStitchNames[c.LongStitch]
		if !ok {
			return errors.Errorf("unknown long_stitch policy %q", c.LongStitch)
		}
		s.LongStitch = v
	}
	if c.Sequin != "" {
		v, ok := sequinNames[c.Sequin]
		if !ok {
			return errors.Errorf("unknown sequin policy %q", c.Sequin)
		}
		s.SequinContingency = v
	}
	return nil
}
