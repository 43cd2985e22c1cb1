package texapply

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorSpace tags how the host should interpret an image's color data.
type ColorSpace string

const (
	// ColorSpaceSRGB marks color data (diffuse, base color).
	ColorSpaceSRGB ColorSpace = "sRGB"
	// ColorSpaceNonColor marks non-color data (normals, masks, alpha).
	ColorSpaceNonColor ColorSpace = "Non-Color"
)

// defaultAlphaInput is the shader input an alpha-flagged slot's secondary
// wire targets when none is configured.
const defaultAlphaInput = "Alpha"

// Slot defines one configurable texture slot: which descriptor keys can feed
// it and which shader input receives the image. Only the active key is tried
// during a run; the rest of the list is the selection the user picks from.
type Slot struct {
	Name       string     `yaml:"name" json:"name"`                                 // Slot identifier (diffuse, normal, alpha, ...)
	Input      string     `yaml:"input" json:"input"`                               // Target shader input name
	ColorSpace ColorSpace `yaml:"colorSpace" json:"colorSpace"`                     // Color space assigned to the loaded image
	UseAlpha   bool       `yaml:"useAlpha,omitempty" json:"useAlpha,omitempty"`     // Also wire the image's alpha channel
	AlphaInput string     `yaml:"alphaInput,omitempty" json:"alphaInput,omitempty"` // Input for the alpha wire, defaults to "Alpha"
	Keys       []string   `yaml:"keys" json:"keys"`                                 // Candidate descriptor keys, in priority order
	Active     int        `yaml:"active,omitempty" json:"active,omitempty"`         // Index of the currently selected key
}

// ActiveKey returns the currently selected descriptor key.
func (s *Slot) ActiveKey() (string, bool) {
	if len(s.Keys) == 0 || s.Active < 0 || s.Active >= len(s.Keys) {
		return "", false
	}

	return s.Keys[s.Active], true
}

// IsNormal reports whether the slot carries a normal map and needs the
// image to pass through a normal-map conversion before the input.
func (s *Slot) IsNormal() bool { return s.Name == "normal" }

// alphaInput returns the input name for the slot's secondary alpha wire.
func (s *Slot) alphaInput() string {
	if s.AlphaInput != "" {
		return s.AlphaInput
	}
	return defaultAlphaInput
}

// AddKey appends a candidate key and selects it.
func (s *Slot) AddKey(key string) {
	s.Keys = append(s.Keys, key)
	s.Active = len(s.Keys) - 1
}

// RemoveKey removes the currently selected key, clamping the selection.
func (s *Slot) RemoveKey() {
	if len(s.Keys) == 0 || s.Active < 0 || s.Active >= len(s.Keys) {
		return
	}

	s.Keys = append(s.Keys[:s.Active], s.Keys[s.Active+1:]...)
	if s.Active > 0 {
		s.Active--
	}
}

// MoveKeyUp swaps the selected key with its predecessor, keeping it selected.
func (s *Slot) MoveKeyUp() {
	if s.Active <= 0 || s.Active >= len(s.Keys) {
		return
	}

	s.Keys[s.Active-1], s.Keys[s.Active] = s.Keys[s.Active], s.Keys[s.Active-1]
	s.Active--
}

// MoveKeyDown swaps the selected key with its successor, keeping it selected.
func (s *Slot) MoveKeyDown() {
	if s.Active < 0 || s.Active >= len(s.Keys)-1 {
		return
	}

	s.Keys[s.Active], s.Keys[s.Active+1] = s.Keys[s.Active+1], s.Keys[s.Active]
	s.Active++
}

// DefaultSlots returns the stock diffuse/normal/alpha slot set.
func DefaultSlots() []Slot {
	return []Slot{
		{
			Name:       "diffuse",
			Input:      "Base Color",
			ColorSpace: ColorSpaceSRGB,
			Keys:       []string{"PM_Diffuse", "Diffuse", "BaseColor"},
		},
		{
			Name:       "normal",
			Input:      "Normal",
			ColorSpace: ColorSpaceNonColor,
			Keys:       []string{"PM_Normals", "Normal", "NormalMap"},
		},
		{
			Name:       "alpha",
			Input:      "Alpha",
			ColorSpace: ColorSpaceNonColor,
			UseAlpha:   true,
			Keys:       []string{"PM_Alpha", "Alpha", "Opacity"},
		},
	}
}

// ResetSlot restores a slot's settings and key list from the stock slot with
// the same name. It reports false when no stock slot matches.
func ResetSlot(s *Slot) bool {
	for _, def := range DefaultSlots() {
		if def.Name != s.Name {
			continue
		}
		def.Active = 0
		*s = def
		return true
	}

	return false
}

// Config is the on-disk YAML configuration for a run: where to scan, which
// slots to apply, and how texture references are resolved.
type Config struct {
	Root          string   `yaml:"root"`                    // Root directory to scan
	Slots         []Slot   `yaml:"slots"`                   // Texture slot definitions, defaults to DefaultSlots()
	Strategy      string   `yaml:"strategy,omitempty"`      // Lookup strategy: "index" (default) or "dir"
	StripPrefixes []string `yaml:"stripPrefixes,omitempty"` // Prefixes stripped from extracted texture names
}

// ParseConfig decodes and validates a YAML configuration payload.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads a YAML configuration file from disk.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	switch c.Strategy {
	case "", "index", "dir":
	default:
		return fmt.Errorf("unknown lookup strategy %q", c.Strategy)
	}

	for i := range c.Slots {
		s := &c.Slots[i]
		if s.Name == "" {
			return fmt.Errorf("slot %d: name is required", i)
		}
		if s.Input == "" {
			return fmt.Errorf("slot %q: input is required", s.Name)
		}
		if s.Active < 0 || (len(s.Keys) > 0 && s.Active >= len(s.Keys)) {
			return fmt.Errorf("slot %q: active key index %d out of range", s.Name, s.Active)
		}
		if s.ColorSpace == "" {
			s.ColorSpace = ColorSpaceSRGB
		}
	}

	return nil
}

// Options converts the configuration into apply options.
func (c *Config) Options() (*ApplyOptions, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opt := &ApplyOptions{
		Slots:         c.Slots,
		StripPrefixes: c.StripPrefixes,
	}
	if c.Strategy == "dir" {
		opt.Lookup = DirProbe{}
	}

	return opt, nil
}
