package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
)

const maxLineBytes = 1024 * 1024

// Load reads one sentence per line. Each line is lower-cased, stripped of
// surrounding quotes, split on whitespace and wrapped in <s> ... </s> unless
// the markers are already present. Blank lines are skipped.
func Load(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineBytes), maxLineBytes)

	var sentences [][]string
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		words := Tokenize(scanner.Text())
		if len(words) == 0 {
			continue
		}
		sentences = append(sentences, Wrap(words))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNum+1)
	}
	return sentences, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return s, nil
}

// Tokenize lower-cases a line, trims newline and double-quote characters
// from both ends and splits it on whitespace.
func Tokenize(line string) []string {
	line = strings.Trim(strings.ToLower(line), "\r\n\"")
	return strings.Fields(line)
}

// Wrap returns words with <s> prepended and </s> appended when missing.
func Wrap(words []string) []string {
	seq := make([]string, 0, len(words)+2)
	if len(words) == 0 || words[0] != language.BOS {
		seq = append(seq, language.BOS)
	}
	seq = append(seq, words...)
	if seq[len(seq)-1] != language.EOS {
		seq = append(seq, language.EOS)
	}
	return seq
}

// Join renders a sentence as a space-separated string.
func Join(sentence []string) string {
	return strings.Join(sentence, " ")
}
