package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ieee0824/bigramlm"
	"github.com/ieee0824/bigramlm/language"
	"github.com/ieee0824/bigramlm/report"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run CORPUS [GIVEN]",
	Short: "train, score and generate, writing all reports",
	Long: `Trains on CORPUS, scores every sentence of GIVEN if provided, generates
sentences and writes the probability tables and reports to the output
directory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		given := ""
		if len(args) == 2 {
			given = args[1]
		}
		return run(loadSettings(viper.GetViper()), args[0], given)
	},
}

func run(s settings, corpusPath, givenPath string) error {
	start := time.Now()

	corpusPath, err := expandPath(corpusPath)
	if err != nil {
		return err
	}
	m, err := bigramlm.NewFromFile(corpusPath, s.options()...)
	if err != nil {
		return err
	}
	c := m.LM.Counts
	fmt.Fprintf(os.Stderr, "Corpus: %d words, %d distinct, %d bigrams\n", c.Words, len(c.Unigrams), len(c.Bigrams))

	r := &report.Report{
		RunID:        report.NewRunID(start),
		Config:       m.Cfg,
		Generate:     s.Generate,
		UnigramProbs: m.LM.UnigramProbs,
		BigramProbs:  m.LM.BigramProbs,
	}

	if givenPath != "" {
		givenPath, err = expandPath(givenPath)
		if err != nil {
			return err
		}
		r.Given, err = m.ScoreFile(givenPath)
		if err != nil {
			return err
		}
		failed := 0
		for _, sc := range r.Given {
			if sc.Err != nil {
				failed++
			}
		}
		fmt.Fprintf(os.Stderr, "Scored %d given sentences (%d failed)\n", len(r.Given), failed)
	}

	if s.Generate {
		r.Generated = generateWithProgress(m, s.Count)
	}

	out, err := expandPath(s.Output)
	if err != nil {
		return err
	}
	if err := report.WriteDir(out, r); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Reports written to %s (%s)\n", out, time.Since(start).Round(time.Millisecond))
	return nil
}

func generateWithProgress(m *bigramlm.LanguageModel, n int) []language.Generated {
	bar := pb.StartNew(n)
	defer bar.Finish()
	return m.GenerateFunc(n, func(int, language.Generated) {
		bar.Increment()
	})
}
