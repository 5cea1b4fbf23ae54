// Package config loads the gameplay tunables from YAML and watches the file
// for edits so a running game can pick them up on the next replay.
package config

// Tunables holds every named number the gameplay code reads.
type Tunables struct {
	Player    PlayerTunables   `yaml:"player"`
	Bridge    BridgeTunables   `yaml:"bridge"`
	Obstacles ObstacleTunables `yaml:"obstacles"`
	Pillars   PillarTunables   `yaml:"pillars"`
	PowerUps  PowerUpTunables  `yaml:"powerups"`
	Scoring   ScoringTunables  `yaml:"scoring"`
	Game      GameTunables     `yaml:"game"`
	Camera    CameraTunables   `yaml:"camera"`
}

// Vec3 is a YAML-friendly 3D vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// PlayerTunables defines movement and hit reactions.
type PlayerTunables struct {
	MoveSpeed         float32 `yaml:"move_speed"`
	TurnSpeed         float32 `yaml:"turn_speed"` // degrees per second
	JumpForce         float32 `yaml:"jump_force"`
	JumpCooldown      float32 `yaml:"jump_cooldown"`
	SpikeSlowFactor   float32 `yaml:"spike_slow_factor"`
	SpikeSlowDuration float32 `yaml:"spike_slow_duration"`
	HammerKnockback   float32 `yaml:"hammer_knockback"`
	KnockbackDrag     float32 `yaml:"knockback_drag"` // horizontal speed lost per second
	SpeedBoostFactor  float32 `yaml:"speed_boost_factor"`
	PowerUpDuration   float32 `yaml:"power_up_duration"`
}

// BridgeTunables defines how a span grows and falls.
type BridgeTunables struct {
	GrowthRate    float32 `yaml:"growth_rate"` // scale units per second
	MinScale      float32 `yaml:"min_scale"`
	MaxScale      float32 `yaml:"max_scale"`
	SpawnForward  float32 `yaml:"spawn_forward"`
	SpawnUp       float32 `yaml:"spawn_up"`
	SettleDelay   float32 `yaml:"settle_delay"`
	ReleaseTilt   float32 `yaml:"release_tilt"` // degrees
	RestAngle     float32 `yaml:"rest_angle"`   // degrees
	BaseWidth     float32 `yaml:"base_width"`
	BaseLength    float32 `yaml:"base_length"`
	BaseThickness float32 `yaml:"base_thickness"`
	PoolSize      int     `yaml:"pool_size"`
}

// ObstacleTunables defines the traps placed on a settled span.
type ObstacleTunables struct {
	MaxCount        int     `yaml:"max_count"`
	EndMargin       float32 `yaml:"end_margin"`     // fraction of span length kept clear at each end
	LateralSpread   float32 `yaml:"lateral_spread"` // fraction of span width
	HammerSpeed     float32 `yaml:"hammer_speed"`   // radians per second
	HammerAmplitude float32 `yaml:"hammer_amplitude"`
	Size            float32 `yaml:"size"`
	Prewarm         int     `yaml:"prewarm"`
}

// PillarTunables defines procedural pillar placement.
type PillarTunables struct {
	MinDistance        float32 `yaml:"min_distance"`
	MaxDistance        float32 `yaml:"max_distance"`
	MinHeight          float32 `yaml:"min_height"`
	MaxHeight          float32 `yaml:"max_height"`
	HeightOffset       float32 `yaml:"height_offset"`
	ArriveRadius       float32 `yaml:"arrive_radius"`
	MinSeparation      float32 `yaml:"min_separation"`
	MaxAttempts        int     `yaml:"max_attempts"`
	DirectionPolicy    string  `yaml:"direction_policy"` // random | forward
	ForwardAxis        Vec3    `yaml:"forward_axis"`
	NextOffset         Vec3    `yaml:"next_offset"`
	Oscillate          bool    `yaml:"oscillate"`
	OscillateAmplitude Vec3    `yaml:"oscillate_amplitude"`
	OscillateSpeed     float32 `yaml:"oscillate_speed"`
	PoolSize           int     `yaml:"pool_size"`
}

// PowerUpTunables defines collectible spawning.
type PowerUpTunables struct {
	PerPillar   int     `yaml:"per_pillar"`
	SpawnChance float32 `yaml:"spawn_chance"`
	Heal        int     `yaml:"heal"`
	Prewarm     int     `yaml:"prewarm"`
}

// ScoringTunables defines the streak multiplier.
type ScoringTunables struct {
	DoubleThreshold int `yaml:"double_threshold"`
	TripleThreshold int `yaml:"triple_threshold"`
}

// GameTunables defines health and the fail condition.
type GameTunables struct {
	InitialHP     int     `yaml:"initial_hp"`
	MaxHP         int     `yaml:"max_hp"`
	FallThreshold float32 `yaml:"fall_threshold"`
	Gravity       float32 `yaml:"gravity"`
}

// CameraTunables defines the chase camera.
type CameraTunables struct {
	Distance  float32 `yaml:"distance"`
	Height    float32 `yaml:"height"`
	Tilt      float32 `yaml:"tilt"`
	Smoothing float32 `yaml:"smoothing"`
	FOV       float32 `yaml:"fov"`
}

const (
	DirectionRandom  = "random"
	DirectionForward = "forward"
)
