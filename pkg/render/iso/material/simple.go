package material

import "github.com/WJZ-P/CommitCraft/pkg/calendar"

// BaseWaterHeight is the height of the static water slab under every column
// in the simple detail mode.
const BaseWaterHeight = 8.0

// SimpleBlock is the single surface block drawn for a color tier in the
// simple detail mode.
type SimpleBlock struct {
	Material Material
	Height   float64
}

var simpleBlocks = [...]SimpleBlock{
	calendar.LevelNone:           {Water, 8},
	calendar.LevelFirstQuartile:  {Dirt, 16},
	calendar.LevelSecondQuartile: {Grass, 26},
	calendar.LevelThirdQuartile:  {Stone, 38},
	calendar.LevelFourthQuartile: {Diamond, 52},
}

// MaxSimpleHeight is the tallest simple block.
const MaxSimpleHeight = 52.0

// SimpleFor returns the surface block for a color tier.
func SimpleFor(l calendar.Level) SimpleBlock {
	if l < calendar.LevelNone || l > calendar.MaxLevel {
		return simpleBlocks[calendar.LevelNone]
	}
	return simpleBlocks[l]
}
