package mission

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/falconry/galaxy"
	"github.com/katalvlaran/falconry/hunters"
)

// falconFile mirrors the on-disk ship record. Pointer fields distinguish
// "absent" from a legitimate zero so missing required fields can be
// reported precisely.
type falconFile struct {
	Autonomy *int        `json:"autonomy" yaml:"autonomy"`
	Routes   []routeFile `json:"routes" yaml:"routes"`
}

// routeFile tolerates both spellings of the travel-time key; snake_case is
// canonical, camelCase appears in older data sets.
type routeFile struct {
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`
	TravelTime  int    `json:"travel_time" yaml:"travel_time"`
	TravelCamel int    `json:"travelTime" yaml:"travelTime"`
}

// empireFile mirrors the on-disk intelligence record.
type empireFile struct {
	Countdown     *int           `json:"countdown" yaml:"countdown"`
	BountyHunters []sightingFile `json:"bounty_hunters" yaml:"bounty_hunters"`
}

type sightingFile struct {
	Planet string `json:"planet" yaml:"planet"`
	Day    int    `json:"day" yaml:"day"`
}

// LoadFalcon reads, decodes and validates a ship record from path.
// JSON is canonical; .yaml/.yml files are decoded as YAML. Broken files
// surface as ErrParse, invalid values as the matching validation sentinel.
func LoadFalcon(path string) (FalconConfig, error) {
	var file falconFile
	if err := decodeFile(path, &file); err != nil {
		return FalconConfig{}, err
	}
	if file.Autonomy == nil {
		return FalconConfig{}, fmt.Errorf("%w: %q in %s", ErrMissingField, "autonomy", path)
	}
	if file.Routes == nil {
		return FalconConfig{}, fmt.Errorf("%w: %q in %s", ErrMissingField, "routes", path)
	}

	cfg := FalconConfig{
		Autonomy: *file.Autonomy,
		Routes:   make([]galaxy.Route, 0, len(file.Routes)),
	}
	for _, r := range file.Routes {
		days := r.TravelTime
		if days == 0 {
			days = r.TravelCamel
		}
		cfg.Routes = append(cfg.Routes, galaxy.Route{
			Origin:      r.Origin,
			Destination: r.Destination,
			TravelTime:  days,
		})
	}

	if err := cfg.Validate(); err != nil {
		return FalconConfig{}, err
	}

	return cfg, nil
}

// LoadEmpire reads, decodes and validates an intelligence record from path.
// The bounty_hunters field is required but may be an empty list.
func LoadEmpire(path string) (EmpireConfig, error) {
	var file empireFile
	if err := decodeFile(path, &file); err != nil {
		return EmpireConfig{}, err
	}
	if file.Countdown == nil {
		return EmpireConfig{}, fmt.Errorf("%w: %q in %s", ErrMissingField, "countdown", path)
	}
	if file.BountyHunters == nil {
		return EmpireConfig{}, fmt.Errorf("%w: %q in %s", ErrMissingField, "bounty_hunters", path)
	}

	cfg := EmpireConfig{
		Countdown: *file.Countdown,
		Sightings: make([]hunters.Sighting, 0, len(file.BountyHunters)),
	}
	for _, s := range file.BountyHunters {
		cfg.Sightings = append(cfg.Sightings, hunters.Sighting{Planet: s.Planet, Day: s.Day})
	}

	if err := cfg.Validate(); err != nil {
		return EmpireConfig{}, err
	}

	return cfg, nil
}

// decodeFile reads path and unmarshals it into out, picking the codec from
// the file extension. All failures are wrapped in ErrParse.
func decodeFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}
	default:
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}
	}

	return nil
}
