package report

import (
	"crypto/rand"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"gopkg.in/yaml.v3"
)

// NewRunID returns a lexically sortable identifier for a run started at t.
func NewRunID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

type yamlSummary struct {
	RunID            string       `yaml:"run_id,omitempty"`
	Smoothing        bool         `yaml:"smoothing"`
	UseLog           bool         `yaml:"use_log"`
	LogFloor         float64      `yaml:"log_floor,omitempty"`
	MaxSteps         int          `yaml:"max_steps,omitempty"`
	Vocabulary       int          `yaml:"vocabulary"`
	Bigrams          int          `yaml:"bigrams"`
	Generated        int          `yaml:"generated"`
	GenerationErrors []string     `yaml:"generation_errors,omitempty"`
	Given            []yamlScored `yaml:"given,omitempty"`
}

type yamlScored struct {
	Sentence    string  `yaml:"sentence"`
	Probability float64 `yaml:"probability"`
	Error       string  `yaml:"error,omitempty"`
}

// WriteYAML writes a machine-readable summary of the run.
func WriteYAML(w io.Writer, r *Report) error {
	s := yamlSummary{
		RunID:      r.RunID,
		Smoothing:  r.Config.Smooth,
		UseLog:     r.Config.UseLog,
		LogFloor:   r.Config.LogFloor,
		MaxSteps:   r.Config.MaxSteps,
		Vocabulary: len(r.UnigramProbs),
		Bigrams:    len(r.BigramProbs),
	}
	for _, g := range r.Generated {
		if g.Err != nil {
			s.GenerationErrors = append(s.GenerationErrors, g.Err.Error())
			continue
		}
		s.Generated++
	}
	for _, g := range r.Given {
		e := yamlScored{Sentence: strings.Join(g.Sentence, " "), Probability: g.Probability}
		if g.Err != nil {
			e.Error = g.Err.Error()
		}
		s.Given = append(s.Given, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
