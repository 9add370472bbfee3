package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ieee0824/bigramlm"
	"github.com/ieee0824/bigramlm/corpus"
	"github.com/ieee0824/bigramlm/report"
)

func init() {
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score CORPUS GIVEN",
	Short: "print the probability of each sentence in GIVEN",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return score(loadSettings(viper.GetViper()), args[0], args[1], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// score writes "<sentence>\t<probability>" lines to stdout; sentences that
// cannot be scored are reported on stderr.
func score(s settings, corpusPath, givenPath string, stdout, stderr io.Writer) error {
	corpusPath, err := expandPath(corpusPath)
	if err != nil {
		return err
	}
	givenPath, err = expandPath(givenPath)
	if err != nil {
		return err
	}

	m, err := bigramlm.NewFromFile(corpusPath, s.options()...)
	if err != nil {
		return err
	}
	scores, err := m.ScoreFile(givenPath)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, sc := range scores {
		text := corpus.Join(sc.Sentence)
		if sc.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", text, sc.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", text, report.FormatProb(sc.Probability))
	}
	return w.Flush()
}
