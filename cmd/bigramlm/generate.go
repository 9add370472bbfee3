package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ieee0824/bigramlm"
	"github.com/ieee0824/bigramlm/corpus"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate CORPUS",
	Short: "print sentences sampled from the model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(loadSettings(viper.GetViper()), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// generate writes s.Count sampled sentences to stdout, one per line; failed
// samples are reported on stderr.
func generate(s settings, corpusPath string, stdout, stderr io.Writer) error {
	corpusPath, err := expandPath(corpusPath)
	if err != nil {
		return err
	}
	m, err := bigramlm.NewFromFile(corpusPath, s.options()...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for i, g := range m.GenerateN(s.Count) {
		if g.Err != nil {
			fmt.Fprintf(stderr, "sentence %d: %v\n", i+1, g.Err)
			continue
		}
		fmt.Fprintln(w, corpus.Join(g.Sentence))
	}
	return w.Flush()
}
