package material

// Tier is the rarity bucket of a day, from 1 to MaxTier. Zero means no
// activity.
type Tier int

// MaxTier is reached at twenty contributions.
const MaxTier Tier = 11

// TierOf maps a count to its rarity tier. Counts 1-9 map to themselves,
// 10-19 to tier 10, and anything from 20 up to the maximum tier.
func TierOf(count int) Tier {
	switch {
	case count <= 0:
		return 0
	case count < 10:
		return Tier(count)
	case count < 20:
		return 10
	default:
		return MaxTier
	}
}
