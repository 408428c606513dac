package domain

import "strings"

// Difficulty labels target puzzle generation & grading. Unknown is the
// fallback bucket for unrecognized user input.
type Difficulty int

const (
	Unknown Difficulty = iota
	Easy
	Medium
	Hard
)

// ParseDifficulty maps a user-supplied label to a Difficulty.
// Anything unrecognized comes back as Unknown.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Unknown
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
	StrategyXWing                       // advanced fish (placeholder for cap)
)
