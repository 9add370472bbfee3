package main

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ieee0824/bigramlm"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bigramlm",
	Short: "bigram language model toolkit",
	Long: `Builds a bigram language model from a corpus (one sentence per line,
words separated by spaces), scores given sentences and generates new ones.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.bigramlm.yaml)")
	pf.Bool("smooth", true, "interpolate bigram probabilities with unigram probabilities")
	pf.Bool("log", true, "score sentences in log2 domain")
	pf.Float64("log-floor", 0, "probability used for zero bigrams in log mode (0 = report an error)")
	pf.Bool("generate", true, "generate sentences")
	pf.IntP("count", "n", 100, "number of sentences to generate")
	pf.Int("max-steps", 1000, "maximum tokens per generated sentence (0 = unbounded)")
	pf.Int64("seed", -1, "random seed for generation (negative = nondeterministic)")
	pf.StringP("output", "o", "output", "output directory for reports")
	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}
}

func initConfig() {
	if used, err := configure(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	} else if used != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
	}
}

// configure points v at the config file (cfgFile, or $HOME/.bigramlm.yaml)
// and BIGRAMLM_* environment variables, then reads the file. It returns the
// file used, or "" when none was found.
func configure(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return "", errors.Wrap(err, "home directory")
		}
		v.AddConfigPath(home)
		v.SetConfigName(".bigramlm")
	}

	v.SetEnvPrefix("bigramlm")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", errors.Wrap(err, "read config")
	}
	return v.ConfigFileUsed(), nil
}

// settings is the resolved command configuration.
type settings struct {
	Smooth   bool
	UseLog   bool
	LogFloor float64
	Generate bool
	Count    int
	MaxSteps int
	Seed     int64 // negative = nondeterministic
	Output   string
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		Smooth:   v.GetBool("smooth"),
		UseLog:   v.GetBool("log"),
		LogFloor: v.GetFloat64("log-floor"),
		Generate: v.GetBool("generate"),
		Count:    v.GetInt("count"),
		MaxSteps: v.GetInt("max-steps"),
		Seed:     v.GetInt64("seed"),
		Output:   v.GetString("output"),
	}
}

func (s settings) options() []bigramlm.Option {
	opts := []bigramlm.Option{
		bigramlm.WithSmoothing(s.Smooth),
		bigramlm.WithLogProbabilities(s.UseLog),
		bigramlm.WithLogFloor(s.LogFloor),
		bigramlm.WithMaxSteps(s.MaxSteps),
	}
	if s.Seed >= 0 {
		opts = append(opts, bigramlm.WithSeed(uint64(s.Seed)))
	}
	return opts
}

// expandPath resolves a leading ~ in a command-line path.
func expandPath(p string) (string, error) {
	return homedir.Expand(p)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
