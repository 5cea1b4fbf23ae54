package engine

// Kind classifies what a GameObject is. Collision code switches on it
// instead of comparing tag strings.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindPlatform
	KindSpan
	KindSpikeTrap
	KindHammerTrap
	KindSpeedPowerUp
	KindInvincibilityPowerUp
	KindHealthPowerUp
)

var kindNames = [...]string{
	KindNone:                 "None",
	KindPlayer:               "Player",
	KindPlatform:             "Platform",
	KindSpan:                 "Span",
	KindSpikeTrap:            "SpikeTrap",
	KindHammerTrap:           "HammerTrap",
	KindSpeedPowerUp:         "SpeedPowerUp",
	KindInvincibilityPowerUp: "InvincibilityPowerUp",
	KindHealthPowerUp:        "HealthPowerUp",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsHazard reports whether touching this kind hurts the player.
func (k Kind) IsHazard() bool {
	return k == KindSpikeTrap || k == KindHammerTrap
}

// IsPowerUp reports whether this kind is a collectible.
func (k Kind) IsPowerUp() bool {
	return k == KindSpeedPowerUp || k == KindInvincibilityPowerUp || k == KindHealthPowerUp
}
