package config

import (
	"os"
	"path/filepath"
	"testing"

	"tower-of-derp/internal/defs"
	"tower-of-derp/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, uint32(300), c.StartingGold)
	assert.Equal(t, 100.0, c.StartingHealth)
	assert.Equal(t, grid.Cell{X: 0, Y: 8}, c.Base)
	assert.Len(t, c.Path, 49)
	assert.Equal(t, 2.0, c.Spawner.InitialCountdown())
}

func TestParsePartialOverride(t *testing.T) {
	c, err := Parse([]byte(`
starting_gold: 50
spawner:
  interval: 0.5
  first_delay: 0
monster:
  health: 30
towers:
  BASIC:
    damage: 25
`))
	require.NoError(t, err)

	assert.Equal(t, uint32(50), c.StartingGold)
	assert.Equal(t, 100.0, c.StartingHealth)
	assert.Equal(t, 0.5, c.Spawner.Interval)
	assert.Equal(t, 0.0, c.Spawner.InitialCountdown())
	assert.Equal(t, 30.0, c.Monster.Health)
	assert.Equal(t, 100.0, c.Monster.Speed)

	basic := c.Towers[defs.TowerBasic]
	assert.Equal(t, 25.0, basic.Damage)
	assert.Equal(t, uint32(10), basic.Cost)
	assert.Equal(t, 100.0, basic.Range)
	assert.Equal(t, 1.0, basic.AttackInterval)

	ninja := c.Towers[defs.TowerNinja]
	require.NotNil(t, ninja.Strong)
	assert.Equal(t, 1000.0, ninja.Strong.Damage)
}

func TestParseTowerOverrideKeepsStockFields(t *testing.T) {
	c, err := Parse([]byte(`
towers:
  BASIC:
    cost: 15
  NINJA:
    range: 120
`))
	require.NoError(t, err)
	stock := defs.DefaultTowers()

	basic := c.Towers[defs.TowerBasic]
	assert.Equal(t, uint32(15), basic.Cost)
	assert.Equal(t, stock[defs.TowerBasic].Damage, basic.Damage)
	assert.Equal(t, stock[defs.TowerBasic].InitialCooldown, basic.InitialCooldown)
	assert.Equal(t, "Basic", basic.Name)

	ninja := c.Towers[defs.TowerNinja]
	assert.Equal(t, 120.0, ninja.Range)
	assert.Equal(t, 10.0, ninja.Damage)
	assert.Equal(t, 2.0, ninja.InitialCooldown)
	assert.Equal(t, uint32(20), ninja.Cost)
	require.NotNil(t, ninja.Strong)
	assert.Equal(t, *stock[defs.TowerNinja].Strong, *ninja.Strong)
}

func TestParseTowerStrongAttackOverride(t *testing.T) {
	c, err := Parse([]byte(`
towers:
  NINJA:
    strong_attack:
      damage: 500
`))
	require.NoError(t, err)

	strong := c.Towers[defs.TowerNinja].Strong
	require.NotNil(t, strong)
	assert.Equal(t, 500.0, strong.Damage)
	assert.Equal(t, 10.0, strong.Interval)
	assert.Equal(t, 5.0, strong.InitialCooldown)
}

func TestParsePathCorners(t *testing.T) {
	c, err := Parse([]byte(`
path_corners: [[0, 0], [3, 0], [3, 2]]
base: [3, 3]
`))
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 3, Y: 1}, {X: 3, Y: 2},
	}, c.Path)
	assert.Equal(t, grid.Cell{X: 3, Y: 3}, c.Base)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"diagonal corners": "path_corners: [[0, 0], [2, 2]]",
		"path gap":         "path: [[0, 0], [0, 2]]",
		"negative delay":   "spawner: {first_delay: -1}",
		"unknown tower":    "towers: {LASER: {range: 10, attack_interval: 1}}",
		"bad yaml":         "starting_gold: [",
		"negative damage":  "towers: {BASIC: {damage: -5}}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_gold: 7\nseed: 42\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), c.StartingGold)
	assert.Equal(t, int64(42), c.Seed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
