package ranking

import (
	"math"

	"github.com/jonathan/format-analyzer/internal/signals"
)

// FormatScore is one format's accumulated score.
type FormatScore struct {
	Format string `json:"format"`
	Score  int    `json:"score"`
}

// Score computes a score for every format in the table, in table order.
// Only boolean signals that are true contribute their weight.
func Score(s signals.Signals, table *WeightTable) []FormatScore {
	charCount := s.Int(signals.CharCount)

	scores := make([]FormatScore, 0, len(table.Formats))
	for _, fw := range table.Formats {
		total := 0
		for name, weight := range fw.Signals {
			if s.Bool(name) {
				total += weight
			}
		}
		if fw.CharacterLimit > 0 && charCount <= fw.CharacterLimit {
			total += CharacterLimitBonus
		}
		scores = append(scores, FormatScore{Format: fw.Format, Score: total})
	}
	return scores
}

// ScoreMap flattens scores into a format to score map.
func ScoreMap(scores []FormatScore) map[string]int {
	out := make(map[string]int, len(scores))
	for _, fs := range scores {
		out[fs.Format] = fs.Score
	}
	return out
}

// Confidence converts a score into a 0-100 percentage of max.
func Confidence(score, maxScore int) int {
	if maxScore <= 0 || score <= 0 {
		return 0
	}
	pct := math.Round(float64(score) / float64(maxScore) * 100)
	return int(math.Min(100, pct))
}
