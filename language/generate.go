package language

import (
	"math/rand/v2"
	"sort"

	"github.com/ieee0824/bigramlm/internal/mathutil"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces sentences by a weighted random walk over the bigram
// transitions of a model, starting at <s> and stopping at </s>.
//
// Transition weights are always the smoothed bigram probabilities,
// independent of the smoothing the model was trained with.
type Generator struct {
	model    *Model
	maxSteps int
	src      rand.Source
	next     map[string][]string // context -> known successors, sorted
}

// NewGenerator creates a generator for m. A nil src draws from the global
// random source, which makes the generator safe for concurrent use; a
// non-nil src gives reproducible output but must not be shared between
// goroutines.
func NewGenerator(m *Model, cfg Config, src rand.Source) *Generator {
	next := make(map[string][]string)
	for key := range m.Counts.Bigrams {
		next[key.Context()] = append(next[key.Context()], key.Successor())
	}
	for _, s := range next {
		sort.Strings(s)
	}
	return &Generator{
		model:    m,
		maxSteps: cfg.MaxSteps,
		src:      src,
		next:     next,
	}
}

// Generate returns one sentence beginning with <s> and ending with a single
// </s>. It fails with ErrDegenerateTransition when the walk reaches a token
// with no successors, and with ErrGenerationBound when more than MaxSteps
// tokens are drawn.
func (g *Generator) Generate() ([]string, error) {
	sentence := []string{BOS}
	cur := BOS
	for steps := 0; cur != EOS; steps++ {
		if g.maxSteps > 0 && steps >= g.maxSteps {
			return nil, errors.Wrapf(ErrGenerationBound, "%d tokens without %s", steps, EOS)
		}
		word, err := g.Next(cur)
		if err != nil {
			return nil, err
		}
		sentence = append(sentence, word)
		cur = word
	}
	return sentence, nil
}

// Next samples a successor of ctx in proportion to its smoothed bigram
// probability.
func (g *Generator) Next(ctx string) (string, error) {
	succ := g.next[ctx]
	weights := g.Weights(ctx)
	if _, ok := mathutil.Normalize(weights); !ok {
		return "", errors.Wrapf(ErrDegenerateTransition, "context %q", ctx)
	}
	if len(succ) == 1 {
		return succ[0], nil
	}
	dist := distuv.NewCategorical(weights, g.src)
	return succ[int(dist.Rand())], nil
}

// Weights returns the unnormalized smoothed probabilities of the known
// successors of ctx, in the order of Successors(ctx).
func (g *Generator) Weights(ctx string) []float64 {
	succ := g.next[ctx]
	weights := make([]float64, len(succ))
	for i, s := range succ {
		weights[i] = g.model.BigramProb(Bigram{ctx, s}, true)
	}
	return weights
}

// Successors returns the tokens observed after ctx in training, sorted.
func (g *Generator) Successors(ctx string) []string {
	return g.next[ctx]
}

// Generated is the outcome of one generation request.
type Generated struct {
	Sentence []string
	Err      error
}

// GenerateN runs n independent generations. A failed request is recorded in
// its Generated entry and does not stop the rest.
func (g *Generator) GenerateN(n int) []Generated {
	return g.GenerateFunc(n, nil)
}

// GenerateFunc is GenerateN with fn called after each request, in order.
func (g *Generator) GenerateFunc(n int, fn func(i int, r Generated)) []Generated {
	out := make([]Generated, 0, n)
	for i := 0; i < n; i++ {
		s, err := g.Generate()
		r := Generated{Sentence: s, Err: err}
		out = append(out, r)
		if fn != nil {
			fn(i, r)
		}
	}
	return out
}
