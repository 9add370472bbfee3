package bigramlm

import (
	"math/rand/v2"

	"github.com/ieee0824/bigramlm/corpus"
	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
)

// LanguageModel is the top-level bigram language model.
type LanguageModel struct {
	LM  *language.Model
	Cfg language.Config

	seed   uint64
	seeded bool
	gen    *language.Generator
}

// Option configures a LanguageModel.
type Option func(*LanguageModel)

// WithSmoothing enables or disables linear interpolation of bigram estimates.
func WithSmoothing(enabled bool) Option {
	return func(m *LanguageModel) {
		m.Cfg.Smooth = enabled
	}
}

// WithLogProbabilities enables or disables log2-domain sentence scoring.
func WithLogProbabilities(enabled bool) Option {
	return func(m *LanguageModel) {
		m.Cfg.UseLog = enabled
	}
}

// WithLogFloor sets the probability used in place of 0 in log-domain
// scoring. 0 makes such sentences fail instead.
func WithLogFloor(p float64) Option {
	return func(m *LanguageModel) {
		m.Cfg.LogFloor = p
	}
}

// WithMaxSteps caps the length of generated sentences. 0 = unbounded.
func WithMaxSteps(n int) Option {
	return func(m *LanguageModel) {
		m.Cfg.MaxSteps = n
	}
}

// WithSeed makes sentence generation reproducible.
func WithSeed(seed uint64) Option {
	return func(m *LanguageModel) {
		m.seed = seed
		m.seeded = true
	}
}

// New trains a LanguageModel on sentences already wrapped in <s> ... </s>.
func New(sentences [][]string, opts ...Option) *LanguageModel {
	m := &LanguageModel{
		Cfg: language.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.LM = language.Train(sentences, m.Cfg.Smooth)

	var src rand.Source
	if m.seeded {
		src = rand.NewPCG(m.seed, m.seed)
	}
	m.gen = language.NewGenerator(m.LM, m.Cfg, src)
	return m
}

// NewFromFile loads a corpus file and trains a LanguageModel on it.
func NewFromFile(corpusPath string, opts ...Option) (*LanguageModel, error) {
	sentences, err := corpus.LoadFile(corpusPath)
	if err != nil {
		return nil, errors.Wrap(err, "load corpus")
	}
	if len(sentences) == 0 {
		return nil, errors.Errorf("corpus %s has no sentences", corpusPath)
	}
	return New(sentences, opts...), nil
}

// Score returns the probability of one sentence.
func (m *LanguageModel) Score(sentence []string) (float64, error) {
	p, err := m.LM.ScoreSentence(sentence, m.Cfg)
	if err != nil {
		return 0, errors.Wrapf(err, "score %q", corpus.Join(sentence))
	}
	return p, nil
}

// ScoreAll scores each sentence independently.
func (m *LanguageModel) ScoreAll(sentences [][]string) []language.Score {
	return m.LM.ScoreAll(sentences, m.Cfg)
}

// ScoreFile loads sentences from a file and scores each of them.
func (m *LanguageModel) ScoreFile(path string) ([]language.Score, error) {
	sentences, err := corpus.LoadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load given sentences")
	}
	return m.ScoreAll(sentences), nil
}

// Generate samples one sentence. With WithSeed the model must not be used
// for generation from several goroutines at once.
func (m *LanguageModel) Generate() ([]string, error) {
	return m.gen.Generate()
}

// GenerateN samples n independent sentences.
func (m *LanguageModel) GenerateN(n int) []language.Generated {
	return m.gen.GenerateN(n)
}

// GenerateFunc samples n sentences, calling fn after each one.
func (m *LanguageModel) GenerateFunc(n int, fn func(i int, r language.Generated)) []language.Generated {
	return m.gen.GenerateFunc(n, fn)
}
