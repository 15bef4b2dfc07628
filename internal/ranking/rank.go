package ranking

import (
	"slices"
	"sort"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/signals"
	"github.com/jonathan/format-analyzer/internal/types"
)

// MaxAlternatives caps the runner-up formats returned with a suggestion.
const MaxAlternatives = 2

// Rank sorts scores descending. Equal scores keep table order.
func Rank(scores []FormatScore) []FormatScore {
	ranked := slices.Clone(scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Suggest picks the highest scoring format and up to two alternatives with
// a positive score, each with a confidence and a reason.
func Suggest(s signals.Signals, scores []FormatScore, table *WeightTable) *types.Suggestion {
	ranked := Rank(scores)

	result := &types.Suggestion{
		SuggestedFormat: formats.Standard,
		Alternatives:    []types.Alternative{},
		Signals:         s,
		Scores:          ScoreMap(scores),
	}
	if len(ranked) == 0 {
		result.Reason = Reason(formats.Standard, s)
		return result
	}

	top := ranked[0]
	result.SuggestedFormat = top.Format
	result.Confidence = Confidence(top.Score, table.MaxPossibleScore(top.Format))
	result.Reason = Reason(top.Format, s)

	for _, fs := range ranked[1:] {
		if len(result.Alternatives) == MaxAlternatives {
			break
		}
		if fs.Score <= 0 {
			break
		}
		result.Alternatives = append(result.Alternatives, types.Alternative{
			Format:     fs.Format,
			Confidence: Confidence(fs.Score, table.MaxPossibleScore(fs.Format)),
			Reason:     Reason(fs.Format, s),
		})
	}
	return result
}
