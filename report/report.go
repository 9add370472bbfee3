package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
)

// Output file names written by WriteDir.
const (
	SummaryFile   = "language_model_output.txt"
	UnigramFile   = "unigram_probabilities.txt"
	BigramFile    = "bigram_probabilities.txt"
	GeneratedFile = "generated_sentences.txt"
	YAMLFile      = "summary.yaml"
)

// Report collects everything produced by one run.
type Report struct {
	RunID        string
	Config       language.Config
	Generate     bool // sentence generation was requested
	UnigramProbs map[string]float64
	BigramProbs  map[language.Bigram]float64
	Generated    []language.Generated
	Given        []language.Score
}

// UnigramEntry is one row of the unigram table.
type UnigramEntry struct {
	Token string
	Prob  float64
}

// BigramEntry is one row of the bigram table.
type BigramEntry struct {
	Key  language.Bigram
	Prob float64
}

// SortUnigrams orders unigrams by decreasing probability, then by token.
func SortUnigrams(probs map[string]float64) []UnigramEntry {
	entries := make([]UnigramEntry, 0, len(probs))
	for w, p := range probs {
		entries = append(entries, UnigramEntry{w, p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Prob != entries[j].Prob {
			return entries[i].Prob > entries[j].Prob
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// SortBigrams orders bigrams by decreasing probability, then by key.
func SortBigrams(probs map[language.Bigram]float64) []BigramEntry {
	entries := make([]BigramEntry, 0, len(probs))
	for key, p := range probs {
		entries = append(entries, BigramEntry{key, p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Prob != entries[j].Prob {
			return entries[i].Prob > entries[j].Prob
		}
		if entries[i].Key[0] != entries[j].Key[0] {
			return entries[i].Key[0] < entries[j].Key[0]
		}
		return entries[i].Key[1] < entries[j].Key[1]
	})
	return entries
}

// FormatProb renders a probability in the shortest exact form.
func FormatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) header(title string, width int) {
	rule := strings.Repeat("-", width)
	ew.printf("%s\n%s\n%s\n\n", rule, title, rule)
}

// WriteUnigrams writes "<token> has probability <p>" lines.
func WriteUnigrams(w io.Writer, probs map[string]float64) error {
	ew := &errWriter{w: w}
	ew.header("Unigrams and their probabilities:", 35)
	for _, e := range SortUnigrams(probs) {
		ew.printf("%s has probability %s\n", e.Token, FormatProb(e.Prob))
	}
	return ew.err
}

// WriteBigrams writes "(<context>, <successor>) has probability <p>" lines.
func WriteBigrams(w io.Writer, probs map[language.Bigram]float64) error {
	ew := &errWriter{w: w}
	ew.header("Bigrams and their probabilities:", 35)
	for _, e := range SortBigrams(probs) {
		ew.printf("%s has probability %s\n", e.Key, FormatProb(e.Prob))
	}
	return ew.err
}

// WriteGenerated writes successful sentences, one per line.
func WriteGenerated(w io.Writer, generated []language.Generated) error {
	ew := &errWriter{w: w}
	ew.header("Generated Sentences", 20)
	for _, g := range generated {
		if g.Err != nil {
			continue
		}
		ew.printf("%s\n", strings.Join(g.Sentence, " "))
	}
	return ew.err
}

// WriteSummary writes the run overview and the given-sentence scores.
func WriteSummary(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}
	ew.printf("Bigram Language Model\n\n")
	ew.printf("Smoothing: %t\n", r.Config.Smooth)
	ew.printf("Use Log Probabilities: %t\n", r.Config.UseLog)
	if r.RunID != "" {
		ew.printf("Run: %s\n", r.RunID)
	}
	ew.printf("Unigrams by decreasing probability can be found in %s\n", UnigramFile)
	ew.printf("Bigrams by decreasing probability can be found in %s\n", BigramFile)
	if r.Generate {
		failed := failedGenerations(r.Generated)
		ew.printf("Generated %d sentences\n", len(r.Generated)-len(failed))
		if len(failed) > 0 {
			ew.printf("%d generations failed:\n", len(failed))
			for _, err := range failed {
				ew.printf("  %v\n", err)
			}
		}
		ew.printf("These can be found in %s\n", GeneratedFile)
	} else {
		ew.printf("Sentence Generation Off\n\n")
	}

	if len(r.Given) > 0 {
		ew.header("Given sentences and their probabilities:", 45)
		for _, s := range r.Given {
			text := strings.Join(s.Sentence, " ")
			if s.Err != nil {
				ew.printf("%s could not be scored: %v\n", text, s.Err)
				continue
			}
			ew.printf("%s has probability %s of occurring\n", text, FormatProb(s.Probability))
		}
	}
	return ew.err
}

func failedGenerations(generated []language.Generated) []error {
	var errs []error
	for _, g := range generated {
		if g.Err != nil {
			errs = append(errs, g.Err)
		}
	}
	return errs
}

type outputFile struct {
	name  string
	write func(io.Writer) error
}

// WriteDir writes all report files into dir, creating it if needed.
func WriteDir(dir string, r *Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	files := []outputFile{
		{SummaryFile, func(w io.Writer) error { return WriteSummary(w, r) }},
		{UnigramFile, func(w io.Writer) error { return WriteUnigrams(w, r.UnigramProbs) }},
		{BigramFile, func(w io.Writer) error { return WriteBigrams(w, r.BigramProbs) }},
		{YAMLFile, func(w io.Writer) error { return WriteYAML(w, r) }},
	}
	if r.Generate {
		files = append(files, outputFile{GeneratedFile, func(w io.Writer) error { return WriteGenerated(w, r.Generated) }})
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return f.Close()
}
