package leaderboard

// Level is the ordinal tier derived from total points.
type Level string

const (
	LevelBronze   Level = "Bronze"
	LevelSilver   Level = "Silver"
	LevelGold     Level = "Gold"
	LevelPlatinum Level = "Platinum"
	LevelDiamond  Level = "Diamond"
)

// Inclusive lower bounds per tier.
const (
	SilverThreshold   = 100
	GoldThreshold     = 200
	PlatinumThreshold = 300
	DiamondThreshold  = 500
)

// ClassifyLevel maps total points to a tier.
func ClassifyLevel(points int) Level {
	switch {
	case points >= DiamondThreshold:
		return LevelDiamond
	case points >= PlatinumThreshold:
		return LevelPlatinum
	case points >= GoldThreshold:
		return LevelGold
	case points >= SilverThreshold:
		return LevelSilver
	default:
		return LevelBronze
	}
}

// Index returns the tier's position in ascending order, Bronze = 0.
func (l Level) Index() int {
	switch l {
	case LevelSilver:
		return 1
	case LevelGold:
		return 2
	case LevelPlatinum:
		return 3
	case LevelDiamond:
		return 4
	default:
		return 0
	}
}
