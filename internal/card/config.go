package card

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "For You"
)

// Button evasion tuning.
const (
	EvadePadding  = 20.0 // usable-area inset from the card edges
	EvadeBuffer   = 50.0 // exclusion margin around the obstacle box
	EvadeAttempts = 20   // random samples before the corner fallback
	EvadeCooldown = 0.15 // seconds the guard holds after a placement
	HoverMargin   = 26.0 // pointer distance that counts as near the button
)

// Fallback button size when a measured dimension is zero.
const (
	DefaultTargetW = 100.0
	DefaultTargetH = 48.0
)

// Heart particles.
const (
	MaxHearts     = 4000
	HeartGravity  = 0.3
	HeartWobble   = 0.5
	HeartSizeMin  = 10.0
	HeartSizeMax  = 30.0
	HeartSpeedX   = 4.0 // vx in [-HeartSpeedX, HeartSpeedX)
	HeartRiseMin  = 5.0 // vy in [-HeartRiseMax, -HeartRiseMin)
	HeartRiseMax  = 17.0
	HeartSpinMax  = 0.1 // rotation speed in [-HeartSpinMax, HeartSpinMax)
	HeartFadeMin  = 0.008
	HeartFadeMax  = 0.013
)

// Note overlays.
const (
	NoteWidth      = 170.0
	NoteHeight     = 120.0
	NoteDismissAt  = 140.0 // drag distance from the anchor that dismisses
)

// Config is the user-tunable card content and behaviour, loaded from an
// optional YAML file.
type Config struct {
	Title   string   `yaml:"title"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Message []string `yaml:"message"`
	Prompt  string   `yaml:"prompt"`
	Yes     string   `yaml:"yes"`
	No      string   `yaml:"no"`
	Closing string   `yaml:"closing"`
	Notes   []string `yaml:"notes"`
	Hearts  []string `yaml:"hearts"` // hex colours, exactly 5 used

	Evasion  EvasionConfig  `yaml:"evasion"`
	Campaign CampaignConfig `yaml:"campaign"`

	Audio bool `yaml:"audio"`
}

type EvasionConfig struct {
	Padding  float64 `yaml:"padding"`
	Buffer   float64 `yaml:"buffer"`
	Attempts int     `yaml:"attempts"`
	Cooldown float64 `yaml:"cooldown"`
	// HoverEvasion moves the No button on pointer proximity. Off means the
	// button only evades on click, the behaviour wanted for touch-primary
	// setups. A product choice, so a flag rather than device sniffing.
	HoverEvasion *bool `yaml:"hover_evasion"`
}

type CampaignConfig struct {
	InitialCount     int     `yaml:"initial_count"`
	SecondaryCount   int     `yaml:"secondary_count"`
	SecondaryDelay   float64 `yaml:"secondary_delay"` // seconds between staggered bursts
	FollowUps        int     `yaml:"follow_ups"`
	FollowUpCount    int     `yaml:"follow_up_count"`
	FollowUpInterval float64 `yaml:"follow_up_interval"`
}

func DefaultConfig() Config {
	hover := true
	return Config{
		Title:   WindowTitle,
		Width:   WindowWidth,
		Height:  WindowHeight,
		Message: []string{"HAPPY VALENTINE'S DAY!", "I MADE YOU A LITTLE CARD."},
		Prompt:  "WILL YOU BE MY VALENTINE?",
		Yes:     "YES",
		No:      "NO",
		Closing: "I KNEW IT! SEE YOU TONIGHT.",
		Notes:   []string{"DRAG ME AWAY!", "KEEP GOING..."},
		Evasion: EvasionConfig{
			Padding:      EvadePadding,
			Buffer:       EvadeBuffer,
			Attempts:     EvadeAttempts,
			Cooldown:     EvadeCooldown,
			HoverEvasion: &hover,
		},
		Campaign: CampaignConfig{
			InitialCount:     120,
			SecondaryCount:   60,
			SecondaryDelay:   0.3,
			FollowUps:        8,
			FollowUpCount:    30,
			FollowUpInterval: 0.5,
		},
		Audio: true,
	}
}

// LoadConfig reads path when it exists, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.normalize()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps tunables into workable ranges.
func (c *Config) normalize() {
	c.Width = clamp(c.Width, 320, 3840)
	c.Height = clamp(c.Height, 240, 2160)
	if c.Title == "" {
		c.Title = WindowTitle
	}
	if c.Prompt == "" {
		c.Prompt = DefaultConfig().Prompt
	}
	if c.Yes == "" {
		c.Yes = "YES"
	}
	if c.No == "" {
		c.No = "NO"
	}

	e := &c.Evasion
	e.Padding = clampF(e.Padding, 0, 200)
	e.Buffer = clampF(e.Buffer, 0, 300)
	e.Attempts = clamp(e.Attempts, 1, 100)
	e.Cooldown = clampF(e.Cooldown, 0, 2)
	if e.HoverEvasion == nil {
		hover := true
		e.HoverEvasion = &hover
	}

	k := &c.Campaign
	k.InitialCount = clamp(k.InitialCount, 1, MaxHearts)
	k.SecondaryCount = clamp(k.SecondaryCount, 0, MaxHearts)
	k.SecondaryDelay = clampF(k.SecondaryDelay, 0.05, 5)
	k.FollowUps = clamp(k.FollowUps, 0, 64)
	k.FollowUpCount = clamp(k.FollowUpCount, 0, MaxHearts)
	k.FollowUpInterval = clampF(k.FollowUpInterval, 0.05, 5)
}

// HeartPalette resolves the configured heart colours, falling back to the
// default palette for missing or unparsable entries.
func (c *Config) HeartPalette() [5]RGB {
	out := DefaultHearts
	for i := 0; i < len(out) && i < len(c.Hearts); i++ {
		col, err := ParseHexRGB(c.Hearts[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "heartfall: %v (keeping default)\n", err)
			continue
		}
		out[i] = col
	}
	return out
}
