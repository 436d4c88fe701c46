package mission_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/falconry/galaxy"
	"github.com/katalvlaran/falconry/hunters"
	"github.com/katalvlaran/falconry/mission"
)

// LoaderSuite groups file-loading tests; each test writes its own fixture
// into a fresh temp dir.
type LoaderSuite struct {
	suite.Suite
	dir string
}

func (s *LoaderSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// write drops content into the suite's temp dir and returns the full path.
func (s *LoaderSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o644))

	return path
}

func (s *LoaderSuite) TestLoadFalcon_JSON() {
	path := s.write("millennium-falcon.json", `{
	  "autonomy": 6,
	  "routes": [
	    {"origin": "Tatooine", "destination": "Dagobah", "travel_time": 6},
	    {"origin": "Dagobah", "destination": "Endor", "travel_time": 4}
	  ]
	}`)

	cfg, err := mission.LoadFalcon(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, cfg.Autonomy)
	require.Len(s.T(), cfg.Routes, 2)
	require.Equal(s.T(), galaxy.Route{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6}, cfg.Routes[0])
}

func (s *LoaderSuite) TestLoadFalcon_CamelCaseTravelTime() {
	path := s.write("falcon.json", `{
	  "autonomy": 6,
	  "routes": [{"origin": "A", "destination": "B", "travelTime": 3}]
	}`)

	cfg, err := mission.LoadFalcon(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, cfg.Routes[0].TravelTime)
}

func (s *LoaderSuite) TestLoadFalcon_YAML() {
	path := s.write("falcon.yaml", `
autonomy: 6
routes:
  - origin: Tatooine
    destination: Hoth
    travel_time: 6
`)

	cfg, err := mission.LoadFalcon(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, cfg.Autonomy)
	require.Equal(s.T(), "Hoth", cfg.Routes[0].Destination)
}

func (s *LoaderSuite) TestLoadFalcon_FileNotFound() {
	_, err := mission.LoadFalcon(filepath.Join(s.dir, "nope.json"))
	require.ErrorIs(s.T(), err, mission.ErrParse)
}

func (s *LoaderSuite) TestLoadFalcon_BrokenJSON() {
	path := s.write("broken.json", `{"autonomy": 6,`)
	_, err := mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, mission.ErrParse)
}

func (s *LoaderSuite) TestLoadFalcon_MissingFields() {
	path := s.write("no-autonomy.json", `{"routes": [{"origin": "A", "destination": "B", "travel_time": 1}]}`)
	_, err := mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, mission.ErrMissingField)

	path = s.write("no-routes.json", `{"autonomy": 6}`)
	_, err = mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, mission.ErrMissingField)
}

func (s *LoaderSuite) TestLoadFalcon_InvalidValues() {
	path := s.write("negative.json", `{"autonomy": -1, "routes": [{"origin": "A", "destination": "B", "travel_time": 1}]}`)
	_, err := mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, mission.ErrBadAutonomy)

	path = s.write("empty-routes.json", `{"autonomy": 6, "routes": []}`)
	_, err = mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, mission.ErrNoRoutes)

	path = s.write("bad-route.json", `{"autonomy": 6, "routes": [{"origin": "A", "destination": "B", "travel_time": -2}]}`)
	_, err = mission.LoadFalcon(path)
	require.ErrorIs(s.T(), err, galaxy.ErrBadTravelTime)
}

func (s *LoaderSuite) TestLoadEmpire_JSON() {
	path := s.write("empire.json", `{
	  "countdown": 7,
	  "bounty_hunters": [
	    {"planet": "Hoth", "day": 6},
	    {"planet": "Hoth", "day": 7}
	  ]
	}`)

	cfg, err := mission.LoadEmpire(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, cfg.Countdown)
	require.Len(s.T(), cfg.Sightings, 2)
	require.Equal(s.T(), hunters.Sighting{Planet: "Hoth", Day: 6}, cfg.Sightings[0])
}

func (s *LoaderSuite) TestLoadEmpire_ZeroCountdownIsValid() {
	path := s.write("empire.json", `{"countdown": 0, "bounty_hunters": []}`)
	cfg, err := mission.LoadEmpire(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, cfg.Countdown)
	require.Empty(s.T(), cfg.Sightings)
}

func (s *LoaderSuite) TestLoadEmpire_MissingFields() {
	path := s.write("no-countdown.json", `{"bounty_hunters": []}`)
	_, err := mission.LoadEmpire(path)
	require.ErrorIs(s.T(), err, mission.ErrMissingField)

	path = s.write("no-hunters.json", `{"countdown": 5}`)
	_, err = mission.LoadEmpire(path)
	require.ErrorIs(s.T(), err, mission.ErrMissingField)
}

func (s *LoaderSuite) TestLoadEmpire_InvalidValues() {
	path := s.write("negative-countdown.json", `{"countdown": -3, "bounty_hunters": []}`)
	_, err := mission.LoadEmpire(path)
	require.ErrorIs(s.T(), err, mission.ErrBadCountdown)

	path = s.write("negative-day.json", `{"countdown": 5, "bounty_hunters": [{"planet": "Hoth", "day": -1}]}`)
	_, err = mission.LoadEmpire(path)
	require.ErrorIs(s.T(), err, hunters.ErrNegativeDay)
}

func (s *LoaderSuite) TestLoadEmpire_YAML() {
	path := s.write("empire.yml", `
countdown: 8
bounty_hunters:
  - planet: Hoth
    day: 6
`)

	cfg, err := mission.LoadEmpire(path)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, cfg.Countdown)
	require.Equal(s.T(), "Hoth", cfg.Sightings[0].Planet)
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}
