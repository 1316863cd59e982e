package hydraulics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// rawProfile mirrors Profile with pointer fields so that absent keys can be
// told apart from zero values.
type rawProfile struct {
	BasinName     *string  `json:"basin_name" yaml:"basin_name"`
	ChannelWidth  *float64 `json:"channel_width" yaml:"channel_width"`
	SideSlope     *float64 `json:"side_slope" yaml:"side_slope"`
	ManningN      *float64 `json:"manning_n" yaml:"manning_n"`
	Slope         *float64 `json:"slope" yaml:"slope"`
	ThresholdHigh *float64 `json:"threshold_high" yaml:"threshold_high"`
}

// LoadProfile loads a basin profile from a JSON or YAML file.
// The format is chosen from the file extension; anything other than
// .yaml/.yml is read as JSON.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	return ParseProfile(data, formatOf(path))
}

// ParseProfile decodes and validates a profile. format is "json" or "yaml".
func ParseProfile(data []byte, format string) (Profile, error) {
	var raw rawProfile
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return Profile{}, &ConfigurationError{Field: "profile", Reason: err.Error()}
	}

	p, err := raw.resolve()
	if err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (r rawProfile) resolve() (Profile, error) {
	if r.BasinName == nil || strings.TrimSpace(*r.BasinName) == "" {
		return Profile{}, &ConfigurationError{Field: "basin_name", Reason: "required field is missing"}
	}
	required := []struct {
		name string
		v    *float64
	}{
		{"channel_width", r.ChannelWidth},
		{"slope", r.Slope},
		{"manning_n", r.ManningN},
	}
	for _, f := range required {
		if f.v == nil {
			return Profile{}, &ConfigurationError{Field: f.name, Reason: "required field is missing"}
		}
	}

	p := Profile{
		BasinName:    *r.BasinName,
		ChannelWidth: *r.ChannelWidth,
		Slope:        *r.Slope,
		ManningN:     *r.ManningN,
	}
	if r.SideSlope != nil {
		p.SideSlope = *r.SideSlope
	}
	if r.ThresholdHigh != nil {
		p.ThresholdHigh = *r.ThresholdHigh
	}
	return p, nil
}

// SaveProfile writes the profile to path, creating parent directories.
// YAML is used for .yaml/.yml paths, indented JSON otherwise.
func SaveProfile(path string, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var data []byte
	var err error
	if formatOf(path) == "yaml" {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ProfileFileName derives a file name from a basin name,
// e.g. "Ona River" -> "ona_river.json".
func ProfileFileName(basin string) string {
	name := strings.ToLower(strings.TrimSpace(basin))
	return strings.ReplaceAll(name, " ", "_") + ".json"
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
