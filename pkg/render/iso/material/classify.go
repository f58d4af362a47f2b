package material

import (
	"math/rand/v2"
)

// MaxHeight is the tallest column, reached at ten contributions.
const MaxHeight = 10

// soilChance is the probability that the second layer below the surface of
// a tall column is dirt rather than stone.
const soilChance = 0.4

// HeightOf returns the number of land layers for a day's count.
func HeightOf(count int) int {
	return max(0, min(count, MaxHeight))
}

// OreRule is one row of the ore table.
type OreRule struct {
	Material      Material
	MinDepthRatio float64 // rule applies only where depthRatio <= MinDepthRatio
	BaseChance    float64
	CountWeight   float64
}

// OreTable is ordered from rarest to most common. The sampler tests rules in
// this order and accepts the first whose running total exceeds the draw.
var OreTable = []OreRule{
	{Diamond, 0.30, 0.04, 1.6},
	{Emerald, 0.35, 0.03, 1.4},
	{Gold, 0.45, 0.05, 1.2},
	{Redstone, 0.50, 0.06, 1.0},
	{Lapis, 0.55, 0.05, 1.0},
	{Iron, 0.80, 0.10, 0.8},
	{Copper, 0.90, 0.10, 0.6},
	{Coal, 1.00, 0.14, 0.5},
}

// DepthRatio returns the normalized position of layer z within the stone
// section of a column of the given height: 0 at the bottom land layer and 1
// just below the soil. Columns with at most one stone layer use 0.5.
func DepthRatio(height, z int) float64 {
	stoneTop := height - 2
	if stoneTop <= 1 {
		return 0.5
	}
	return float64(z-1) / float64(stoneTop-1)
}

// CountFactor scales ore chances by activity, saturating at 2.5.
func CountFactor(count int) float64 {
	return min(2.5, 1+float64(count-1)*0.1)
}

// Chance returns the unnormalized weight rule r contributes at depthRatio for
// the given count factor, or 0 when the layer is too shallow for the rule.
func (r OreRule) Chance(depthRatio, countFactor float64) float64 {
	if depthRatio > r.MinDepthRatio {
		return 0
	}
	depthBonus := 1 - depthRatio/r.MinDepthRatio
	return r.BaseChance * (1 + depthBonus) * (countFactor * r.CountWeight / 1.5)
}

// SampleOre resolves a deep layer with one uniform draw from rng.
func SampleOre(height, z, count int, rng *rand.Rand) Material {
	ratio := DepthRatio(height, z)
	factor := CountFactor(count)
	roll := rng.Float64()

	total := 0.0
	for _, rule := range OreTable {
		if ratio > rule.MinDepthRatio {
			continue
		}
		total += rule.Chance(ratio, factor)
		if total > roll {
			return rule.Material
		}
	}
	return Deep
}

// Classify returns the material of layer z in a column of the given height.
// Layer 0 is the water base; layers 1..height are land.
func Classify(height, z, count int, rng *rand.Rand) Material {
	switch {
	case z <= 0 || height <= 0:
		return Water
	case z == height:
		if count <= 1 {
			return SoftSurface
		}
		return CoveredSurface
	case z == height-1:
		return Soil
	case z == height-2 && height >= 5 && rng.Float64() < soilChance:
		return Soil
	default:
		return SampleOre(height, z, count, rng)
	}
}

// Column classifies every layer of the column for count, from the water base
// at index 0 up to the surface at index HeightOf(count).
func Column(count int, rng *rand.Rand) []Material {
	h := HeightOf(count)
	out := make([]Material, h+1)
	for z := range out {
		out[z] = Classify(h, z, count, rng)
	}
	return out
}
