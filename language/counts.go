package language

import "github.com/pkg/errors"

// Sentence boundary markers.
const (
	BOS = "<s>"
	EOS = "</s>"
)

// Bigram is an ordered pair of consecutive tokens: context, successor.
type Bigram [2]string

// Context returns the first token of the pair.
func (b Bigram) Context() string { return b[0] }

// Successor returns the second token of the pair.
func (b Bigram) Successor() string { return b[1] }

func (b Bigram) String() string {
	return "(" + b[0] + ", " + b[1] + ")"
}

// Counts holds raw frequency statistics of a corpus.
type Counts struct {
	Unigrams map[string]int // token -> occurrences
	Bigrams  map[Bigram]int // (context, successor) -> occurrences
	Words    int            // total token occurrences
}

// Counter accumulates sentences into Counts.
type Counter struct {
	counts *Counts
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{
		counts: &Counts{
			Unigrams: make(map[string]int),
			Bigrams:  make(map[Bigram]int),
		},
	}
}

// AddSentence counts one sentence. The sentence is expected to already carry
// <s> and </s>; nothing is added or filtered.
func (c *Counter) AddSentence(seq []string) {
	for i := 0; i < len(seq); i++ {
		c.counts.Unigrams[seq[i]]++
		c.counts.Words++

		if i >= 1 {
			c.counts.Bigrams[Bigram{seq[i-1], seq[i]}]++
		}
	}
}

// Counts returns the accumulated statistics.
func (c *Counter) Counts() *Counts {
	return c.counts
}

// Count scans a corpus once and returns its unigram and bigram counts.
func Count(corpus [][]string) *Counts {
	c := NewCounter()
	for _, s := range corpus {
		c.AddSentence(s)
	}
	return c.Counts()
}

// UnigramProb returns count(token) / Words. Tokens never seen during
// counting yield ErrMissingVocabulary.
func (c *Counts) UnigramProb(token string) (float64, error) {
	n, ok := c.Unigrams[token]
	if !ok || c.Words == 0 {
		return 0, errors.Wrapf(ErrMissingVocabulary, "unigram %q", token)
	}
	return float64(n) / float64(c.Words), nil
}

// Vocab returns all distinct tokens seen during counting.
func (c *Counts) Vocab() []string {
	words := make([]string, 0, len(c.Unigrams))
	for w := range c.Unigrams {
		words = append(words, w)
	}
	return words
}
