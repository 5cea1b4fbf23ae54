package config

import (
	_ "embed"
)

//go:embed defaults/tunables.yaml
var defaultTunablesYAML []byte

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultTunablesYAML
}

// Default returns the hardcoded tunables. The embedded YAML carries the
// same values.
func Default() Tunables {
	return Tunables{
		Player: PlayerTunables{
			MoveSpeed:         3,
			TurnSpeed:         100,
			JumpForce:         5,
			JumpCooldown:      1,
			SpikeSlowFactor:   0.5,
			SpikeSlowDuration: 2,
			HammerKnockback:   5,
			KnockbackDrag:     6,
			SpeedBoostFactor:  2,
			PowerUpDuration:   5,
		},
		Bridge: BridgeTunables{
			GrowthRate:    0.1,
			MinScale:      0.1,
			MaxScale:      0.2,
			SpawnForward:  0.5,
			SpawnUp:       -0.6,
			SettleDelay:   1,
			ReleaseTilt:   5,
			RestAngle:     90,
			BaseWidth:     8,
			BaseLength:    40,
			BaseThickness: 2,
			PoolSize:      2,
		},
		Obstacles: ObstacleTunables{
			MaxCount:        3,
			EndMargin:       0.2,
			LateralSpread:   0.3,
			HammerSpeed:     3,
			HammerAmplitude: 0.4,
			Size:            0.3,
			Prewarm:         4,
		},
		Pillars: PillarTunables{
			MinDistance:        5,
			MaxDistance:        6,
			MinHeight:          -2,
			MaxHeight:          2,
			HeightOffset:       2,
			ArriveRadius:       1,
			MinSeparation:      4.5,
			MaxAttempts:        20,
			DirectionPolicy:    DirectionRandom,
			ForwardAxis:        Vec3{Z: 1},
			NextOffset:         Vec3{Z: 5.5},
			Oscillate:          false,
			OscillateAmplitude: Vec3{X: 0.6, Y: 0.3, Z: 0.6},
			OscillateSpeed:     1.2,
			PoolSize:           3,
		},
		PowerUps: PowerUpTunables{
			PerPillar:   1,
			SpawnChance: 0.6,
			Heal:        1,
			Prewarm:     3,
		},
		Scoring: ScoringTunables{
			DoubleThreshold: 5,
			TripleThreshold: 10,
		},
		Game: GameTunables{
			InitialHP:     3,
			MaxHP:         5,
			FallThreshold: -10,
			Gravity:       9.81,
		},
		Camera: CameraTunables{
			Distance:  1.65,
			Height:    1.232,
			Tilt:      26.3,
			Smoothing: 10,
			FOV:       60,
		},
	}
}
