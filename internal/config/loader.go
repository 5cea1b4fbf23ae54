package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid tunables")

const fileName = "tunables.yaml"

// Load reads the tunables.
// Search order: customPath -> ~/.pillarrun/tunables.yaml -> ./configs/tunables.yaml -> embedded default
//
// Files only need to name the values they change; everything else keeps
// its default. A custom path that cannot be read or parsed is an error,
// the fallback locations are skipped silently.
func Load(customPath string) (Tunables, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultTunablesYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single tunables file.
func LoadFile(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte) (Tunables, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Resolve returns the file Load would read for customPath, or "" when only
// the embedded default applies.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Marshal renders cfg as YAML.
func Marshal(cfg Tunables) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(fileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", fileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pillarrun", filename)
}

// Validate reports every inconsistent value at once.
func (t Tunables) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	p := t.Player
	check(p.MoveSpeed > 0, "player.move_speed must be positive, got %v", p.MoveSpeed)
	check(p.TurnSpeed >= 0, "player.turn_speed must not be negative, got %v", p.TurnSpeed)
	check(p.JumpCooldown >= 0, "player.jump_cooldown must not be negative, got %v", p.JumpCooldown)
	check(p.SpikeSlowFactor > 0 && p.SpikeSlowFactor <= 1, "player.spike_slow_factor must be in (0, 1], got %v", p.SpikeSlowFactor)
	check(p.SpeedBoostFactor >= 1, "player.speed_boost_factor must be at least 1, got %v", p.SpeedBoostFactor)
	check(p.PowerUpDuration > 0, "player.power_up_duration must be positive, got %v", p.PowerUpDuration)

	b := t.Bridge
	check(b.GrowthRate > 0, "bridge.growth_rate must be positive, got %v", b.GrowthRate)
	check(b.MinScale > 0 && b.MinScale < b.MaxScale, "bridge.min_scale (%v) must be positive and below bridge.max_scale (%v)", b.MinScale, b.MaxScale)
	check(b.SettleDelay >= 0, "bridge.settle_delay must not be negative, got %v", b.SettleDelay)
	check(b.ReleaseTilt > 0 && b.ReleaseTilt < b.RestAngle, "bridge.release_tilt (%v) must be positive and below bridge.rest_angle (%v)", b.ReleaseTilt, b.RestAngle)
	check(b.RestAngle <= 180, "bridge.rest_angle must be at most 180, got %v", b.RestAngle)
	check(b.BaseWidth > 0 && b.BaseLength > 0 && b.BaseThickness > 0, "bridge base dimensions must be positive")
	check(b.PoolSize > 0, "bridge.pool_size must be positive, got %d", b.PoolSize)

	o := t.Obstacles
	check(o.MaxCount >= 1, "obstacles.max_count must be at least 1, got %d", o.MaxCount)
	check(o.EndMargin >= 0 && o.EndMargin < 0.5, "obstacles.end_margin must be in [0, 0.5), got %v", o.EndMargin)
	check(o.LateralSpread >= 0 && o.LateralSpread <= 0.5, "obstacles.lateral_spread must be in [0, 0.5], got %v", o.LateralSpread)
	check(o.Size > 0, "obstacles.size must be positive, got %v", o.Size)

	pl := t.Pillars
	check(pl.MinDistance > 0 && pl.MinDistance <= pl.MaxDistance, "pillars.min_distance (%v) must be positive and at most pillars.max_distance (%v)", pl.MinDistance, pl.MaxDistance)
	check(pl.MinHeight <= pl.MaxHeight, "pillars.min_height (%v) must be at most pillars.max_height (%v)", pl.MinHeight, pl.MaxHeight)
	check(pl.ArriveRadius > 0, "pillars.arrive_radius must be positive, got %v", pl.ArriveRadius)
	check(pl.MinSeparation >= 0, "pillars.min_separation must not be negative, got %v", pl.MinSeparation)
	check(pl.MaxAttempts >= 1, "pillars.max_attempts must be at least 1, got %d", pl.MaxAttempts)
	check(pl.DirectionPolicy == DirectionRandom || pl.DirectionPolicy == DirectionForward,
		"pillars.direction_policy must be %q or %q, got %q", DirectionRandom, DirectionForward, pl.DirectionPolicy)
	check(pl.DirectionPolicy != DirectionForward || pl.ForwardAxis.X != 0 || pl.ForwardAxis.Z != 0,
		"pillars.forward_axis needs a horizontal component")
	check(pl.PoolSize >= 0, "pillars.pool_size must not be negative, got %d", pl.PoolSize)

	pu := t.PowerUps
	check(pu.PerPillar >= 0, "powerups.per_pillar must not be negative, got %d", pu.PerPillar)
	check(pu.SpawnChance >= 0 && pu.SpawnChance <= 1, "powerups.spawn_chance must be in [0, 1], got %v", pu.SpawnChance)

	s := t.Scoring
	check(s.DoubleThreshold >= 1 && s.DoubleThreshold < s.TripleThreshold,
		"scoring.double_threshold (%d) must be at least 1 and below scoring.triple_threshold (%d)", s.DoubleThreshold, s.TripleThreshold)

	g := t.Game
	check(g.InitialHP >= 1 && g.InitialHP <= g.MaxHP, "game.initial_hp (%d) must be in [1, game.max_hp (%d)]", g.InitialHP, g.MaxHP)
	check(g.Gravity > 0, "game.gravity must be positive, got %v", g.Gravity)

	c := t.Camera
	check(c.Smoothing >= 0, "camera.smoothing must not be negative, got %v", c.Smoothing)
	check(c.FOV > 0 && c.FOV < 180, "camera.fov must be in (0, 180), got %v", c.FOV)

	return errors.Join(errs...)
}
