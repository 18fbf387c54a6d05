package tour

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

const presetsVersion = 1

// Viewpoint is one stop of the tour.
type Viewpoint struct {
	Name     string  `yaml:"name"`
	CenterX  float64 `yaml:"center_x"`
	CenterY  float64 `yaml:"center_y"`
	Distance float64 `yaml:"distance"`
	MaxColor int     `yaml:"max_color"`
}

// String implements fmt.Stringer for log output.
func (v Viewpoint) String() string {
	return fmt.Sprintf("%s (%g, %g) d=%g max=%d", v.Name, v.CenterX, v.CenterY, v.Distance, v.MaxColor)
}

type presetDocument struct {
	Version    int         `yaml:"version"`
	Viewpoints []Viewpoint `yaml:"viewpoints"`
}

var defaultViewpoints = mustParse(presetsYAML)

// DefaultViewpoints returns a copy of the built-in tour.
func DefaultViewpoints() []Viewpoint {
	out := make([]Viewpoint, len(defaultViewpoints))
	copy(out, defaultViewpoints)
	return out
}

// ParseViewpoints decodes and validates a viewpoint document.
func ParseViewpoints(data []byte) ([]Viewpoint, error) {
	var doc presetDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &PresetError{Index: -1, Message: "failed to parse YAML", Err: err}
	}

	if doc.Version != presetsVersion {
		return nil, &PresetError{
			Index:   -1,
			Message: fmt.Sprintf("unsupported version: %d (expected %d)", doc.Version, presetsVersion),
		}
	}
	if len(doc.Viewpoints) == 0 {
		return nil, &PresetError{Index: -1, Message: "no viewpoints defined"}
	}

	for i, vp := range doc.Viewpoints {
		if err := validateViewpoint(i, vp); err != nil {
			return nil, err
		}
	}

	return doc.Viewpoints, nil
}

func validateViewpoint(i int, vp Viewpoint) error {
	if vp.Distance <= 0 {
		return &PresetError{Index: i, Message: fmt.Sprintf("distance must be positive, got %g", vp.Distance)}
	}
	if vp.MaxColor <= 0 {
		return &PresetError{Index: i, Message: fmt.Sprintf("max_color must be positive, got %d", vp.MaxColor)}
	}
	return nil
}

func mustParse(data []byte) []Viewpoint {
	vps, err := ParseViewpoints(data)
	if err != nil {
		panic(fmt.Sprintf("tour: embedded presets: %v", err))
	}
	return vps
}
