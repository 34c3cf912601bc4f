package folio

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CursorConfig bundles hover classification, geometry, and spring settings
// for the custom cursor.
type CursorConfig struct {
	Tracker     TrackerConfig  `yaml:"tracker"`
	Geometry    CursorGeometry `yaml:"geometry"`
	DotSpring   SpringConfig   `yaml:"dot_spring"`
	RingSpring  SpringConfig   `yaml:"ring_spring"`
	LabelSpring SpringConfig   `yaml:"label_spring"`
}

// DefaultCursorConfig returns the portfolio's cursor settings.
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		Tracker:     DefaultTrackerConfig(),
		Geometry:    DefaultCursorGeometry(),
		DotSpring:   DotSpring,
		RingSpring:  RingSpring,
		LabelSpring: LabelSpring,
	}
}

// Validate rejects geometry and springs that cannot animate.
func (c CursorConfig) Validate() error {
	if c.Geometry.DotSize <= 0 || c.Geometry.RingSize <= 0 {
		return fmt.Errorf("%w: cursor sizes must be positive (dot=%v, ring=%v)",
			ErrInvalidConfiguration, c.Geometry.DotSize, c.Geometry.RingSize)
	}
	for name, s := range map[string]SpringConfig{
		"dot": c.DotSpring, "ring": c.RingSpring, "label": c.LabelSpring,
	} {
		if s.Stiffness <= 0 || s.Damping < 0 {
			return fmt.Errorf("%w: %s spring stiffness=%v damping=%v",
				ErrInvalidConfiguration, name, s.Stiffness, s.Damping)
		}
	}
	return nil
}

// Palette holds the page colors as hex strings.
type Palette struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	AccentEnd  string `yaml:"accent_end"`
	Text       string `yaml:"text"`
}

// Colors is a parsed Palette.
type Colors struct {
	Background, Accent, AccentEnd, Text Color
}

// DefaultPalette is the dark theme with the indigo-to-violet accent.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0a0a0a",
		Accent:     "#667eea",
		AccentEnd:  "#764ba2",
		Text:       "#ffffff",
	}
}

// Parse converts every hex string in the palette.
func (p Palette) Parse() (Colors, error) {
	var c Colors
	for _, f := range []struct {
		hex string
		dst *Color
	}{
		{p.Background, &c.Background},
		{p.Accent, &c.Accent},
		{p.AccentEnd, &c.AccentEnd},
		{p.Text, &c.Text},
	} {
		col, err := ParseColor(f.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette: %w", err)
		}
		*f.dst = col
	}
	return c, nil
}

// ItemConfig is one element inside a section.
type ItemConfig struct {
	// Kind is "button", "link", "card", or "text".
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
	// Title is drawn inside a card. Cards have no text of their own.
	Title string `yaml:"title,omitempty"`
	// Role overrides the ARIA role ("button" makes any kind interactive).
	Role string `yaml:"role,omitempty"`
	// Target names the section a click scrolls to.
	Target string `yaml:"target,omitempty"`
	// Href is an external link, logged on click in debug mode.
	Href string `yaml:"href,omitempty"`
}

// SectionConfig describes one band of the page.
type SectionConfig struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	// Height is in viewport heights. Zero means one viewport.
	Height float64      `yaml:"height,omitempty"`
	Items  []ItemConfig `yaml:"items"`
}

// Config is the full portfolio configuration.
type Config struct {
	Title    string          `yaml:"title"`
	Debug    bool            `yaml:"debug"`
	Field    FieldConfig     `yaml:"field"`
	Cursor   CursorConfig    `yaml:"cursor"`
	Loading  LoadingConfig   `yaml:"loading"`
	Palette  Palette         `yaml:"palette"`
	Sections []SectionConfig `yaml:"sections"`
}

// DefaultConfig returns the stock portfolio: five sections, 1000 points,
// a two second splash.
func DefaultConfig() Config {
	return Config{
		Title:   "Portfolio",
		Field:   DefaultFieldConfig(),
		Cursor:  DefaultCursorConfig(),
		Loading: DefaultLoadingConfig(),
		Palette: DefaultPalette(),
		Sections: []SectionConfig{
			{Name: SectionHome, Title: "Creative Developer", Items: []ItemConfig{
				{Kind: "button", Text: "View My Work", Target: SectionProjects},
				{Kind: "button", Text: "Learn More", Target: SectionAbout},
			}},
			{Name: SectionAbout, Title: "About Me", Items: []ItemConfig{
				{Kind: "text", Text: "Full-stack development, 3D web graphics, and interactive interfaces."},
				{Kind: "link", Text: "Download CV", Href: "cv.pdf"},
			}},
			{Name: SectionSkills, Title: "Skills", Items: []ItemConfig{
				{Kind: "card", Title: "Frontend Development"},
				{Kind: "card", Title: "Backend & Database"},
				{Kind: "card", Title: "Design & Tools"},
			}},
			{Name: SectionProjects, Title: "Projects", Height: 1.5, Items: []ItemConfig{
				{Kind: "card", Title: "E-Commerce Platform"},
				{Kind: "card", Title: "3D Portfolio Website"},
				{Kind: "card", Title: "Task Management App"},
				{Kind: "link", Text: "Live Demo", Href: "https://example.com"},
			}},
			{Name: SectionContact, Title: "Get In Touch", Items: []ItemConfig{
				{Kind: "link", Text: "Email Me"},
				{Kind: "text", Text: "Let's build something together."},
				{Kind: "button", Text: "", Role: "button"},
			}},
		},
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Keys missing from data keep their defaults; a sections list replaces the
// default sections wholesale.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Environment variables read by ApplyEnv.
const (
	EnvPointCount     = "FOLIO_POINT_COUNT"
	EnvPointBounds    = "FOLIO_POINT_BOUNDS"
	EnvSeed           = "FOLIO_SEED"
	EnvDebug          = "FOLIO_DEBUG"
	EnvLoadingSeconds = "FOLIO_LOADING_SECONDS"
)

// ApplyEnv loads the given .env files (missing files are skipped; variables
// already set in the process win) and then applies FOLIO_* overrides to c.
// The result is validated.
func (c *Config) ApplyEnv(envFiles ...string) error {
	var present []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("env file %s: %w", f, err)
		}
	}
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	if v, ok := os.LookupEnv(EnvPointCount); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPointCount, err)
		}
		c.Field.Count = n
	}
	if v, ok := os.LookupEnv(EnvPointBounds); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPointBounds, err)
		}
		c.Field.Bounds = f
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Field.Seed = n
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := os.LookupEnv(EnvLoadingSeconds); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLoadingSeconds, err)
		}
		c.Loading.Seconds = f
	}
	return c.Validate()
}

// Validate checks every part of the configuration.
func (c Config) Validate() error {
	if err := c.Field.Validate(); err != nil {
		return err
	}
	if err := c.Cursor.Validate(); err != nil {
		return err
	}
	if err := c.Loading.Validate(); err != nil {
		return err
	}
	if _, err := c.Palette.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidConfiguration)
	}
	names := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrInvalidConfiguration, i)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidConfiguration, s.Name)
		}
		if s.Height < 0 {
			return fmt.Errorf("%w: section %q height %v", ErrInvalidConfiguration, s.Name, s.Height)
		}
		names[s.Name] = true
	}
	for _, s := range c.Sections {
		for j, it := range s.Items {
			switch it.Kind {
			case "button", "link", "card", "text":
			default:
				return fmt.Errorf("%w: section %q item %d: unknown kind %q", ErrInvalidConfiguration, s.Name, j, it.Kind)
			}
			if it.Target != "" && !names[it.Target] {
				return fmt.Errorf("%w: section %q item %d: %w %q", ErrInvalidConfiguration, s.Name, j, ErrUnknownSection, it.Target)
			}
		}
	}
	return nil
}
