package journey

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls scene timing, stops, and sampling. Start from
// DefaultConfig and override what you need.
type Config struct {
	// TotalDuration is the wall-clock length of the whole journey. Segment
	// and seek durations are fractions of it.
	TotalDuration time.Duration
	// Stops is the ordered stop list. See NewSequencer for the rules.
	Stops []Stop
	// MinSegmentDuration floors each stop-to-stop segment.
	MinSegmentDuration time.Duration
	// MinSeekDuration floors the animation that follows a seek.
	MinSeekDuration time.Duration
	// SampleResolution is the NearestT sample count.
	SampleResolution int
	// ResizeDebounce is the quiet period before a viewport change is applied.
	ResizeDebounce time.Duration
	// SettleDelay separates Start's reset from the first segment.
	SettleDelay time.Duration
	// LayoutSettle delays the first stop layout after Prepare.
	LayoutSettle time.Duration
	// PulseAmplitude scales the marker's cosmetic pulse.
	PulseAmplitude float64
	// RevealLead reveals a stop's payload this far (in t) before the marker
	// reaches it.
	RevealLead float64
	// Continuous makes Start play the whole journey in one session instead
	// of stopping at each stop.
	Continuous bool
	// SeekReveal decides whether a seek reveals the stops it jumps over.
	SeekReveal SeekRevealPolicy
}

// DefaultStops returns the stock four-message journey.
func DefaultStops() []Stop {
	return []Stop{
		{Position: 0},
		{Position: 0.12, Payload: &Payload{ID: "msg1"}},
		{Position: 0.36, Payload: &Payload{ID: "msg2"}},
		{Position: 0.63, Payload: &Payload{ID: "msg3"}},
		{Position: 0.86, Payload: &Payload{ID: "msg4"}},
		{Position: 1},
	}
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		TotalDuration:      3800 * time.Millisecond,
		Stops:              DefaultStops(),
		MinSegmentDuration: 300 * time.Millisecond,
		MinSeekDuration:    1000 * time.Millisecond,
		SampleResolution:   DefaultSampleResolution,
		ResizeDebounce:     150 * time.Millisecond,
		SettleDelay:        60 * time.Millisecond,
		LayoutSettle:       80 * time.Millisecond,
		PulseAmplitude:     0.06,
	}
}

// Validate checks every field. Stop errors also match ErrInvalidStops.
func (c Config) Validate() error {
	switch {
	case c.TotalDuration <= 0:
		return fmt.Errorf("%w: total duration %v must be positive", ErrInvalidConfig, c.TotalDuration)
	case c.MinSegmentDuration < 0, c.MinSeekDuration < 0, c.ResizeDebounce < 0,
		c.SettleDelay < 0, c.LayoutSettle < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case c.SampleResolution < 0:
		return fmt.Errorf("%w: sample resolution %d must not be negative", ErrInvalidConfig, c.SampleResolution)
	case c.PulseAmplitude < 0:
		return fmt.Errorf("%w: pulse amplitude %v must not be negative", ErrInvalidConfig, c.PulseAmplitude)
	case c.RevealLead < 0 || c.RevealLead >= 1:
		return fmt.Errorf("%w: reveal lead %v must be in [0, 1)", ErrInvalidConfig, c.RevealLead)
	case c.SeekReveal > SeekReplayIntermediate:
		return fmt.Errorf("%w: unknown seek reveal policy %d", ErrInvalidConfig, c.SeekReveal)
	}
	if err := validateStops(c.Stops); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// configFile is the YAML shape of Config. Durations are milliseconds.
type configFile struct {
	TotalDurationMS      int64   `yaml:"total_duration_ms"`
	Stops                []Stop  `yaml:"stops"`
	MinSegmentDurationMS int64   `yaml:"min_segment_duration_ms"`
	MinSeekDurationMS    int64   `yaml:"min_seek_duration_ms"`
	SampleResolution     int     `yaml:"sample_resolution"`
	ResizeDebounceMS     int64   `yaml:"resize_debounce_ms"`
	SettleDelayMS        int64   `yaml:"settle_delay_ms"`
	LayoutSettleMS       int64   `yaml:"layout_settle_ms"`
	PulseAmplitude       float64 `yaml:"pulse_amplitude"`
	RevealLead           float64 `yaml:"reveal_lead"`
	Continuous           bool    `yaml:"continuous"`
	SeekReveal           string  `yaml:"seek_reveal"`
}

func toFile(c Config) configFile {
	return configFile{
		TotalDurationMS:      c.TotalDuration.Milliseconds(),
		Stops:                c.Stops,
		MinSegmentDurationMS: c.MinSegmentDuration.Milliseconds(),
		MinSeekDurationMS:    c.MinSeekDuration.Milliseconds(),
		SampleResolution:     c.SampleResolution,
		ResizeDebounceMS:     c.ResizeDebounce.Milliseconds(),
		SettleDelayMS:        c.SettleDelay.Milliseconds(),
		LayoutSettleMS:       c.LayoutSettle.Milliseconds(),
		PulseAmplitude:       c.PulseAmplitude,
		RevealLead:           c.RevealLead,
		Continuous:           c.Continuous,
		SeekReveal:           c.SeekReveal.String(),
	}
}

func (f configFile) config() (Config, error) {
	c := Config{
		TotalDuration:      time.Duration(f.TotalDurationMS) * time.Millisecond,
		Stops:              f.Stops,
		MinSegmentDuration: time.Duration(f.MinSegmentDurationMS) * time.Millisecond,
		MinSeekDuration:    time.Duration(f.MinSeekDurationMS) * time.Millisecond,
		SampleResolution:   f.SampleResolution,
		ResizeDebounce:     time.Duration(f.ResizeDebounceMS) * time.Millisecond,
		SettleDelay:        time.Duration(f.SettleDelayMS) * time.Millisecond,
		LayoutSettle:       time.Duration(f.LayoutSettleMS) * time.Millisecond,
		PulseAmplitude:     f.PulseAmplitude,
		RevealLead:         f.RevealLead,
		Continuous:         f.Continuous,
	}
	switch f.SeekReveal {
	case "", "skip":
		c.SeekReveal = SeekSkipIntermediate
	case "replay":
		c.SeekReveal = SeekReplayIntermediate
	default:
		return Config{}, fmt.Errorf("%w: unknown seek_reveal %q", ErrInvalidConfig, f.SeekReveal)
	}
	return c, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Keys that are absent keep their defaults; a stops list replaces the
// default stops entirely.
func ParseConfig(data []byte) (Config, error) {
	f := toFile(DefaultConfig())
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c, err := f.config()
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// MarshalConfig encodes c as YAML.
func MarshalConfig(c Config) ([]byte, error) {
	return yaml.Marshal(toFile(c))
}
