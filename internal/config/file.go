// internal/config/file.go
package config

import (
	"errors"
	"fmt"
	"os"

	"tower-of-derp/internal/defs"
	"tower-of-derp/pkg/grid"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable simulation value. A YAML file only needs to
// mention the values it overrides.
type Config struct {
	StartingGold   uint32  `yaml:"starting_gold" json:"starting_gold"`
	StartingHealth float64 `yaml:"starting_health" json:"starting_health"`
	Seed           int64   `yaml:"seed" json:"seed"` // 0 seeds from the clock

	Spawner SpawnerConfig                           `yaml:"spawner" json:"spawner"`
	Monster defs.MonsterDefinition                  `yaml:"monster" json:"monster"`
	Towers  map[defs.TowerKind]defs.TowerDefinition `yaml:"towers" json:"towers"`

	Path        []grid.Cell `yaml:"path" json:"path"`
	PathCorners []grid.Cell `yaml:"path_corners,omitempty" json:"path_corners,omitempty"`
	Base        grid.Cell   `yaml:"base" json:"base"`
}

type SpawnerConfig struct {
	Interval float64 `yaml:"interval" json:"interval"` // seconds between spawns
	// FirstDelay is the countdown before the first monster. Nil means one interval.
	FirstDelay *float64 `yaml:"first_delay,omitempty" json:"first_delay,omitempty"`
}

// InitialCountdown returns the spawner's starting countdown.
func (s SpawnerConfig) InitialCountdown() float64 {
	if s.FirstDelay != nil {
		return *s.FirstDelay
	}
	return s.Interval
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		StartingGold:   300,
		StartingHealth: 100,
		Spawner:        SpawnerConfig{Interval: 2.0},
		Monster:        defs.DefaultMonster(),
		Towers:         defs.DefaultTowers(),
		Path:           defs.DefaultPath(),
		Base:           defs.DefaultBase,
	}
}

// ApplyDefaults fills zero values left by a partial file.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.StartingHealth == 0 {
		c.StartingHealth = d.StartingHealth
	}
	if c.Spawner.Interval == 0 {
		c.Spawner.Interval = d.Spawner.Interval
	}

	m, dm := &c.Monster, d.Monster
	if m.Health == 0 {
		m.Health = dm.Health
	}
	if m.Speed == 0 {
		m.Speed = dm.Speed
	}
	if m.Size == 0 {
		m.Size = dm.Size
	}

	if c.Towers == nil {
		c.Towers = map[defs.TowerKind]defs.TowerDefinition{}
	}
	for kind, def := range d.Towers {
		cur, ok := c.Towers[kind]
		if !ok {
			c.Towers[kind] = def
			continue
		}
		c.Towers[kind] = mergeTower(cur, def)
	}

	if len(c.Path) == 0 {
		c.Path = d.Path
	}
}

func mergeTower(cur, def defs.TowerDefinition) defs.TowerDefinition {
	if cur.Name == "" {
		cur.Name = def.Name
	}
	if cur.Cost == 0 {
		cur.Cost = def.Cost
	}
	if cur.Range == 0 {
		cur.Range = def.Range
	}
	if cur.AttackInterval == 0 {
		cur.AttackInterval = def.AttackInterval
	}
	if cur.Strong == nil && def.Strong != nil {
		s := *def.Strong
		cur.Strong = &s
	}
	return cur
}

// Validate returns the first rule the configuration breaks.
func (c *Config) Validate() error {
	if c.StartingHealth <= 0 {
		return errors.New("starting_health must be positive")
	}
	if c.Spawner.Interval <= 0 {
		return errors.New("spawner.interval must be positive")
	}
	if c.Spawner.FirstDelay != nil && *c.Spawner.FirstDelay < 0 {
		return errors.New("spawner.first_delay must not be negative")
	}
	if c.Monster.Health <= 0 || c.Monster.Speed <= 0 || c.Monster.Size <= 0 {
		return errors.New("monster health, speed and size must be positive")
	}
	if c.Monster.BaseDamagePerSecond < 0 {
		return errors.New("monster.base_damage_per_second must not be negative")
	}
	if len(c.Path) == 0 {
		return errors.New("path must contain at least one cell")
	}
	// Повтор клетки допустим, монстр просто проходит её ещё раз.
	for i := 1; i < len(c.Path); i++ {
		prev, cur := c.Path[i-1], c.Path[i]
		if prev != cur && !prev.Adjacent(cur) {
			return fmt.Errorf("path: %s -> %s is not a step to a neighbouring cell", prev, cur)
		}
	}
	for kind, def := range c.Towers {
		if !kind.Valid() {
			return fmt.Errorf("unknown tower kind %q", kind)
		}
		if err := def.Validate(kind); err != nil {
			return err
		}
	}
	for _, kind := range defs.AllTowerKinds {
		if _, ok := c.Towers[kind]; !ok {
			return fmt.Errorf("tower %s is not defined", kind)
		}
	}
	return nil
}

// Load reads a YAML file on top of the defaults, expands path corners and
// validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse is Load without the file read.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := overlayTowers(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.ApplyDefaults()
	if len(c.PathCorners) > 0 {
		path, err := grid.Trace(c.PathCorners)
		if err != nil {
			return nil, fmt.Errorf("path_corners: %w", err)
		}
		c.Path = path
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// overlayTowers decodes each tower entry again, this time on top of its stock
// definition. yaml.v3 starts every map value from zero, which would wipe the
// fields a partial entry leaves out.
func overlayTowers(b []byte, c *Config) error {
	var raw struct {
		Towers map[defs.TowerKind]yaml.Node `yaml:"towers"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return err
	}
	stock := defs.DefaultTowers()
	for kind, node := range raw.Towers {
		def := stock[kind]
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("tower %s: %w", kind, err)
		}
		c.Towers[kind] = def
	}
	return nil
}
