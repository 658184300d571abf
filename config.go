package arcprogress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultMaximum               = 100.0
	DefaultProgress              = 0.0
	DefaultStartAngle            = 270.0
	DefaultMinimumAngle          = 60.0
	DefaultForegroundStrokeWidth = 3.0
	DefaultBackgroundStrokeWidth = 1.0
	DefaultProgressDuration      = 100 * time.Millisecond
	DefaultRotationDuration      = 1200 * time.Millisecond
	DefaultSweepDuration         = 600 * time.Millisecond
	DefaultAnimateProgress       = true
	DefaultDrawBackgroundStroke  = false
	DefaultIndeterminate         = false
	DefaultForegroundStrokeCap   = CapButt
)

// Config is the complete configuration of a Bar.
//
// Start from DefaultConfig and override fields; a zero Config is invalid
// because its Maximum is zero.
type Config struct {
	// Maximum is the progress value drawn as a full circle. Must not be 0.
	Maximum float64 `yaml:"maximum"`

	// Progress is the current progress in determinate mode.
	Progress float64 `yaml:"progress"`

	// StartAngle is where the determinate arc begins, in [-360, 360].
	// 270 is 12 o'clock.
	StartAngle float64 `yaml:"start_angle"`

	// AnimateProgress interpolates progress changes while visible.
	AnimateProgress bool `yaml:"animate_progress"`

	// ProgressDuration is the length of a progress interpolation. >= 0.
	ProgressDuration time.Duration `yaml:"progress_duration"`

	// Indeterminate selects the perpetual spinner instead of progress.
	Indeterminate bool `yaml:"indeterminate"`

	// MinimumAngle is the shortest indeterminate arc, in [0, 180].
	MinimumAngle float64 `yaml:"indeterminate_minimum_angle"`

	// RotationDuration is the indeterminate rotation period. >= 0.
	RotationDuration time.Duration `yaml:"indeterminate_rotation_duration"`

	// SweepDuration is the length of one grow or shrink phase. >= 0.
	SweepDuration time.Duration `yaml:"indeterminate_sweep_duration"`

	// Foreground styles the progress arc.
	Foreground Stroke `yaml:"foreground"`

	// Background styles the full circle behind the arc.
	Background Stroke `yaml:"background"`

	// DrawBackground enables the background circle.
	DrawBackground bool `yaml:"draw_background_stroke"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Maximum:          DefaultMaximum,
		Progress:         DefaultProgress,
		StartAngle:       DefaultStartAngle,
		AnimateProgress:  DefaultAnimateProgress,
		ProgressDuration: DefaultProgressDuration,
		Indeterminate:    DefaultIndeterminate,
		MinimumAngle:     DefaultMinimumAngle,
		RotationDuration: DefaultRotationDuration,
		SweepDuration:    DefaultSweepDuration,
		Foreground: Stroke{
			Width: DefaultForegroundStrokeWidth,
			Cap:   DefaultForegroundStrokeCap,
			Color: gg.Blue,
		},
		Background: Stroke{
			Width: DefaultBackgroundStrokeWidth,
			Cap:   CapButt,
			Color: gg.Black,
		},
		DrawBackground: DefaultDrawBackgroundStroke,
	}
}

// Validate checks every field and returns the first violation, wrapped
// around ErrInvalidArgument.
func (c Config) Validate() error {
	checks := []error{
		checkFinite("progress", c.Progress),
		checkMaximum(c.Maximum),
		checkStartAngle(c.StartAngle),
		checkDuration("progress duration", c.ProgressDuration),
		checkMinimumAngle(c.MinimumAngle),
		checkDuration("rotation duration", c.RotationDuration),
		checkDuration("sweep duration", c.SweepDuration),
		checkWidth("foreground stroke width", c.Foreground.Width),
		checkCap(c.Foreground.Cap),
		checkWidth("background stroke width", c.Background.Width),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Keys absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("arcprogress: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML document over DefaultConfig and validates the
// result. Unknown keys are rejected. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("arcprogress: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// strokeYAML is the document form of a Stroke. Pointers distinguish absent
// keys from zero values so partial overrides keep defaults.
type strokeYAML struct {
	Width *float64 `yaml:"width,omitempty"`
	Cap   *string  `yaml:"cap,omitempty"`
	Color *string  `yaml:"color,omitempty"`
}

// UnmarshalYAML decodes a stroke mapping, e.g.
//
//	foreground:
//	  width: 4
//	  cap: round
//	  color: "#2196F3"
//
// Keys other than width, cap and color are rejected.
func (s *Stroke) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			switch key := value.Content[i].Value; key {
			case "width", "cap", "color":
			default:
				return invalid("stroke", key, "unknown key")
			}
		}
	}
	var raw strokeYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Width != nil {
		s.Width = *raw.Width
	}
	if raw.Cap != nil {
		c, err := ParseStrokeCap(*raw.Cap)
		if err != nil {
			return err
		}
		s.Cap = c
	}
	if raw.Color != nil {
		col, err := ParseColor(*raw.Color)
		if err != nil {
			return err
		}
		s.Color = col
	}
	return nil
}

// MarshalYAML encodes the stroke in the form UnmarshalYAML reads.
func (s Stroke) MarshalYAML() (any, error) {
	width := s.Width
	capName := s.Cap.String()
	col := FormatColor(s.Color)
	return strokeYAML{Width: &width, Cap: &capName, Color: &col}, nil
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the '#' is
// optional). Unlike gg.Hex, malformed input is an error rather than black.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, invalid("color", s, "want #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, invalid("color", s, "not a hex digit: "+string(r))
		}
	}
	return gg.Hex(hex), nil
}

// FormatColor returns c as "#RRGGBBAA".
func FormatColor(c gg.RGBA) string {
	to8 := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite number")
	}
	return nil
}

func checkMaximum(maximum float64) error {
	if err := checkFinite("maximum", maximum); err != nil {
		return err
	}
	if maximum == 0 {
		return &ConfigError{Field: "maximum", Value: maximum, Reason: "must not be zero", Err: ErrZeroMaximum}
	}
	return nil
}

func checkStartAngle(angle float64) error {
	if err := checkFinite("start angle", angle); err != nil {
		return err
	}
	if angle < -360 || angle > 360 {
		return invalid("start angle", angle, "should be between -360 and 360 degrees (inclusive)")
	}
	return nil
}

func checkMinimumAngle(angle float64) error {
	if err := checkFinite("indeterminate minimum angle", angle); err != nil {
		return err
	}
	if angle < 0 || angle > 180 {
		return invalid("indeterminate minimum angle", angle, "should be between 0 and 180 degrees (inclusive)")
	}
	return nil
}

func checkDuration(field string, d time.Duration) error {
	if d < 0 {
		return invalid(field, d, "can't be negative")
	}
	return nil
}

func checkWidth(field string, w float64) error {
	if err := checkFinite(field, w); err != nil {
		return err
	}
	if w < 0 {
		return invalid(field, w, "can't be negative")
	}
	return nil
}

func checkCap(c StrokeCap) error {
	if !c.Valid() {
		return invalid("stroke cap", c, "unknown cap")
	}
	return nil
}
