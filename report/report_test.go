package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var testCorpus = [][]string{
	{"<s>", "the", "cat", "sat", "</s>"},
	{"<s>", "the", "dog", "sat", "</s>"},
}

func testReport(t *testing.T) *Report {
	t.Helper()
	m := language.Train(testCorpus, true)
	cfg := language.DefaultConfig()
	return &Report{
		RunID:        NewRunID(time.Unix(1700000000, 0)),
		Config:       cfg,
		Generate:     true,
		UnigramProbs: m.UnigramProbs,
		BigramProbs:  m.BigramProbs,
		Generated: []language.Generated{
			{Sentence: testCorpus[0]},
			{Err: errors.Wrap(language.ErrGenerationBound, "test")},
		},
		Given: m.ScoreAll([][]string{testCorpus[1]}, cfg),
	}
}

func TestSortUnigrams(t *testing.T) {
	entries := SortUnigrams(map[string]float64{"b": 0.2, "a": 0.2, "c": 0.6})
	want := []string{"c", "a", "b"}
	for i, e := range entries {
		if e.Token != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, e.Token, want[i])
		}
	}
}

func TestSortBigrams(t *testing.T) {
	entries := SortBigrams(map[language.Bigram]float64{
		{"a", "z"}: 0.5,
		{"a", "b"}: 0.5,
		{"x", "y"}: 1.0,
	})
	want := []language.Bigram{{"x", "y"}, {"a", "b"}, {"a", "z"}}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Errorf("entries[%d] = %s, want %s", i, e.Key, want[i])
		}
	}
}

func TestWriteUnigrams(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUnigrams(&buf, map[string]float64{"the": 0.2}); err != nil {
		t.Fatalf("WriteUnigrams error: %v", err)
	}
	if !strings.Contains(buf.String(), "the has probability 0.2\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteBigrams(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBigrams(&buf, map[language.Bigram]float64{{"the", "cat"}: 0.6}); err != nil {
		t.Fatalf("WriteBigrams error: %v", err)
	}
	if !strings.Contains(buf.String(), "(the, cat) has probability 0.6\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	if err := WriteSummary(&buf, r); err != nil {
		t.Fatalf("WriteSummary error: %v", err)
	}
	out := buf.String()
	t.Logf("summary:\n%s", out)

	for _, want := range []string{
		"Bigram Language Model",
		"Smoothing: true",
		"Generated 1 sentences",
		"1 generations failed:",
		"Given sentences and their probabilities:",
		"<s> the dog sat </s> has probability ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestWriteSummaryScoreFailure(t *testing.T) {
	r := &Report{
		Given: []language.Score{{
			Sentence: []string{"<s>", "x", "</s>"},
			Err:      language.ErrNonPositiveLog,
		}},
	}
	var buf bytes.Buffer
	if err := WriteSummary(&buf, r); err != nil {
		t.Fatalf("WriteSummary error: %v", err)
	}
	if !strings.Contains(buf.String(), "<s> x </s> could not be scored") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Sentence Generation Off") {
		t.Errorf("missing generation-off line:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	r := testReport(t)
	var buf bytes.Buffer
	if err := WriteYAML(&buf, r); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	var got yamlSummary
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	if got.RunID != r.RunID {
		t.Errorf("RunID = %q, want %q", got.RunID, r.RunID)
	}
	if got.Vocabulary != 6 {
		t.Errorf("Vocabulary = %d, want 6", got.Vocabulary)
	}
	if got.Generated != 1 || len(got.GenerationErrors) != 1 {
		t.Errorf("Generated = %d, errors = %v, want 1 and 1", got.Generated, got.GenerationErrors)
	}
	if len(got.Given) != 1 || got.Given[0].Sentence != "<s> the dog sat </s>" {
		t.Errorf("Given = %+v", got.Given)
	}
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	if err := WriteDir(dir, testReport(t)); err != nil {
		t.Fatalf("WriteDir error: %v", err)
	}
	for _, name := range []string{SummaryFile, UnigramFile, BigramFile, GeneratedFile, YAMLFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("read %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	data, _ := os.ReadFile(filepath.Join(dir, GeneratedFile))
	if !strings.Contains(string(data), "<s> the cat sat </s>") {
		t.Errorf("generated file missing sentence:\n%s", data)
	}
}

func TestNewRunID(t *testing.T) {
	a := NewRunID(time.Unix(1, 0))
	b := NewRunID(time.Unix(2, 0))
	if len(a) != 26 {
		t.Errorf("len(RunID) = %d, want 26", len(a))
	}
	if a >= b {
		t.Errorf("run ids not ordered by time: %s >= %s", a, b)
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWritersReportErrors(t *testing.T) {
	r := testReport(t)
	writers := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{"summary", func(w io.Writer) error { return WriteSummary(w, r) }},
		{"unigrams", func(w io.Writer) error { return WriteUnigrams(w, r.UnigramProbs) }},
		{"bigrams", func(w io.Writer) error { return WriteBigrams(w, r.BigramProbs) }},
		{"generated", func(w io.Writer) error { return WriteGenerated(w, r.Generated) }},
	}
	for _, tt := range writers {
		for _, after := range []int{0, 1} {
			if err := tt.write(&failingWriter{after: after}); err == nil {
				t.Errorf("%s: write after %d succeeded, want error", tt.name, after)
			}
		}
	}
}
