// Package prefabs loads camera-control settings from yaml and watches spec
// files for live reload.
package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/camkit/pancam/ecs/component"
	"github.com/camkit/pancam/input"
)

// CameraSpec is the yaml form of a camera's control settings. Every field is
// optional; absent fields keep the defaults of component.NewPanCam.
type CameraSpec struct {
	Enabled      *bool    `yaml:"enabled"`
	ZoomToCursor *bool    `yaml:"zoom_to_cursor"`
	MinScale     *float64 `yaml:"min_scale"`
	MaxScale     *float64 `yaml:"max_scale"`
	GrabButtons  []string `yaml:"grab_buttons"`
}

// LoadSpec reads and decodes a yaml spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// PanCam builds settings from the spec, overlaying defaults.
func (s CameraSpec) PanCam() (component.PanCam, error) {
	cam := component.NewPanCam()
	if err := s.Apply(&cam); err != nil {
		return component.PanCam{}, err
	}
	return cam, nil
}

// Apply overlays the spec's present fields onto existing settings.
func (s CameraSpec) Apply(cam *component.PanCam) error {
	if cam == nil {
		return fmt.Errorf("prefabs: apply camera spec: nil settings")
	}
	if s.Enabled != nil {
		cam.Enabled = *s.Enabled
	}
	if s.ZoomToCursor != nil {
		cam.ZoomToCursor = *s.ZoomToCursor
	}
	if s.MinScale != nil {
		cam.MinScale = *s.MinScale
	}
	if s.MaxScale != nil {
		cam.MaxScale = *s.MaxScale
	}
	if s.GrabButtons != nil {
		buttons := make([]input.MouseButton, 0, len(s.GrabButtons))
		for _, name := range s.GrabButtons {
			b, err := input.ParseMouseButton(name)
			if err != nil {
				return fmt.Errorf("prefabs: grab_buttons: %w", err)
			}
			buttons = append(buttons, b)
		}
		cam.GrabButtons = buttons
	}
	return nil
}
