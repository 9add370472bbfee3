package language

import (
	"math"

	"github.com/ieee0824/bigramlm/internal/mathutil"
	"github.com/pkg/errors"
)

// ScoreSentence returns the probability of a sentence as the product of its
// bigram probabilities. The sentence must already carry <s> and </s>.
//
// With cfg.UseLog the product is accumulated as a sum of log2 terms and
// converted back, so the result is always a probability. A zero bigram in log
// mode is replaced by cfg.LogFloor when set, and otherwise fails with
// ErrNonPositiveLog.
func (m *Model) ScoreSentence(sentence []string, cfg Config) (float64, error) {
	if !cfg.UseLog {
		prob := 1.0
		for i := 0; i < len(sentence)-1; i++ {
			prob *= m.BigramProb(Bigram{sentence[i], sentence[i+1]}, cfg.Smooth)
		}
		return prob, nil
	}

	total := 0.0
	for i := 0; i < len(sentence)-1; i++ {
		key := Bigram{sentence[i], sentence[i+1]}
		lp, ok := mathutil.Log2(m.BigramProb(key, cfg.Smooth), cfg.LogFloor)
		if !ok {
			return 0, errors.Wrapf(ErrNonPositiveLog, "bigram %s at position %d", key, i)
		}
		total += lp
	}
	return math.Exp2(total), nil
}

// Score is the outcome of scoring one sentence.
type Score struct {
	Sentence    []string
	Probability float64
	Err         error
}

// ScoreAll scores each sentence independently. A failure is recorded in the
// corresponding Score and does not stop the remaining sentences.
func (m *Model) ScoreAll(sentences [][]string, cfg Config) []Score {
	scores := make([]Score, len(sentences))
	for i, s := range sentences {
		p, err := m.ScoreSentence(s, cfg)
		scores[i] = Score{Sentence: s, Probability: p, Err: err}
	}
	return scores
}
