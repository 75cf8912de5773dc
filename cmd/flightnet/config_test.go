package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightnet/core"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const seedYAML = `
log_level: warn
table_style: double
seed:
  airports: [jfk, lax, ord]
  routes:
    - {from: jfk, to: lax, fare: 300}
    - {from: lax, to: ord, fare: 220}
`

// TestLoadConfig_Defaults uses defaults without a file or with a missing one.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadConfig_FileAndEnv applies file values, then env overrides.
func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeFile(t, "flightnet.yaml", seedYAML)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "double", cfg.TableStyle)
	assert.Len(t, cfg.Seed.Airports, 3)
	assert.Equal(t, RouteConfig{From: "jfk", To: "lax", Fare: 300}, cfg.Seed.Routes[0])

	t.Setenv(envLogLevel, "debug")
	t.Setenv(envTableStyle, "ascii")
	t.Setenv(envGenSeed, "77")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ascii", cfg.TableStyle)
	assert.EqualValues(t, 77, cfg.Generator.Seed)
	assert.EqualValues(t, 50, cfg.Generator.FareMin)
}

// TestLoadConfig_Invalid rejects bad files and values.
func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"Malformed":  "log_level: [\n",
		"Level":      "log_level: loud\n",
		"Style":      "table_style: wavy\n",
		"SelfRoute":  "seed:\n  routes: [{from: a, to: A, fare: 1}]\n",
		"ZeroFare":   "seed:\n  routes: [{from: a, to: b, fare: 0}]\n",
		"MissingEnd": "seed:\n  routes: [{from: a, fare: 3}]\n",
		"FareMin":    "generator: {fare_min: 0}\n",
		"FareOrder":  "generator: {fare_min: 90, fare_max: 10}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "bad.yaml", body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(writeFile(t, "lvl.yaml", "log_level: loud\n"))
	assert.ErrorIs(t, err, errInvalidConfig)
}

// TestApplySeed uppercases codes and reports bad routes.
func TestApplySeed(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, applySeed(g, SeedConfig{
		Airports: []string{"jfk", "lax"},
		Routes:   []RouteConfig{{From: "jfk", To: "Lax", Fare: 300}},
	}))
	assert.Equal(t, []string{"JFK", "LAX"}, g.Vertices())
	w, err := g.Weight("JFK", "LAX")
	require.NoError(t, err)
	assert.EqualValues(t, 300, w)

	err = applySeed(core.NewGraph(), SeedConfig{Airports: []string{"a", "A"}})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	err = applySeed(core.NewGraph(), SeedConfig{
		Airports: []string{"a"},
		Routes:   []RouteConfig{{From: "a", To: "b", Fare: 1}},
	})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
