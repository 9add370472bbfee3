package language

// interpolationWeight is the fixed weight given to the bigram estimate when
// smoothing; the remainder goes to the context's unigram probability.
const interpolationWeight = 0.5

// Config holds scoring and generation parameters.
type Config struct {
	Smooth   bool    // interpolate bigram estimates with unigram probability
	UseLog   bool    // accumulate sentence scores in log2 domain
	LogFloor float64 // probability substituted for 0 in log mode; 0 = return ErrNonPositiveLog
	MaxSteps int     // maximum tokens per generated sentence; <= 0 = unbounded
}

// DefaultConfig returns reasonable default parameters.
func DefaultConfig() Config {
	return Config{
		Smooth:   true,
		UseLog:   true,
		LogFloor: 0,
		MaxSteps: 1000,
	}
}

// Model is a trained bigram language model. It is read-only after Train and
// may be shared between goroutines.
type Model struct {
	Counts       *Counts
	UnigramProbs map[string]float64
	BigramProbs  map[Bigram]float64 // built with the Smooth flag given to Train
	Smooth       bool
}

// Train counts the corpus and derives both probability tables.
func Train(corpus [][]string, smooth bool) *Model {
	c := Count(corpus)
	uni := UnigramTable(c)
	return &Model{
		Counts:       c,
		UnigramProbs: uni,
		BigramProbs:  BigramTable(c, uni, smooth),
		Smooth:       smooth,
	}
}

// UnigramTable returns count/Words for every distinct token.
func UnigramTable(c *Counts) map[string]float64 {
	probs := make(map[string]float64, len(c.Unigrams))
	for w := range c.Unigrams {
		// Every key of c.Unigrams is in vocabulary.
		p, _ := c.UnigramProb(w)
		probs[w] = p
	}
	return probs
}

// BigramTable applies BigramProb to every observed bigram.
func BigramTable(c *Counts, uni map[string]float64, smooth bool) map[Bigram]float64 {
	probs := make(map[Bigram]float64, len(c.Bigrams))
	for key := range c.Bigrams {
		probs[key] = BigramProb(c, uni, key, smooth)
	}
	return probs
}

// BigramProb estimates P(successor | context).
//
// The raw estimate is count(context, successor) / count(context), or 0 when
// either is unknown. With smoothing it becomes
// 0.5*raw + 0.5*P(context), or 0.5*raw when the context was never seen.
func BigramProb(c *Counts, uni map[string]float64, pair Bigram, smooth bool) float64 {
	var p float64
	ctxCount, ctxSeen := c.Unigrams[pair.Context()]
	if n, ok := c.Bigrams[pair]; ok && ctxSeen && ctxCount > 0 {
		p = float64(n) / float64(ctxCount)
	}
	if !smooth {
		return p
	}
	if ctxSeen {
		return interpolationWeight*p + (1-interpolationWeight)*uni[pair.Context()]
	}
	return interpolationWeight * p
}

// BigramProb estimates a single pair against this model's counts.
func (m *Model) BigramProb(pair Bigram, smooth bool) float64 {
	return BigramProb(m.Counts, m.UnigramProbs, pair, smooth)
}
