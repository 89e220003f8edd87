package combat

import (
	"math"

	"github.com/udisondev/spirego/internal/game/status"
)

// Damage modifiers applied by weak (attacker) and vulnerable (defender).
const (
	weakMultiplier       = 0.75
	vulnerableMultiplier = 1.5
)

// CalculateDamage applies attacker and defender statuses to base damage.
//
// Order: +strength, ×0.75 if weak (floor), ×1.5 if vulnerable (floor),
// intangible caps a positive result to 1. The result is never negative.
// Block is not considered here.
func CalculateDamage(base int, attacker, defender status.Ledger) int {
	dmg := base + attacker.Stacks(status.Strength)

	if attacker.Has(status.Weak) {
		dmg = scale(dmg, weakMultiplier)
	}
	if defender.Has(status.Vulnerable) {
		dmg = scale(dmg, vulnerableMultiplier)
	}
	if defender.Has(status.Intangible) && dmg > 0 {
		dmg = 1
	}

	return max(dmg, 0)
}

func scale(dmg int, mul float64) int {
	return int(math.Floor(float64(dmg) * mul))
}

// absorb spends block against dmg and returns the HP loss that remains.
func absorb(block *int, dmg int) int {
	if dmg <= 0 {
		return 0
	}
	absorbed := min(*block, dmg)
	*block -= absorbed
	return dmg - absorbed
}
