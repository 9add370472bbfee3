package language

import "github.com/pkg/errors"

var (
	// ErrMissingVocabulary is returned when a lookup needs a token that was
	// not observed during training.
	ErrMissingVocabulary = errors.New("token not in vocabulary")

	// ErrDegenerateTransition is returned when the generator reaches a
	// context with no outgoing transition of positive weight.
	ErrDegenerateTransition = errors.New("no successors for context")

	// ErrNonPositiveLog is returned when log-domain scoring meets a zero
	// bigram probability and no floor is configured.
	ErrNonPositiveLog = errors.New("log of non-positive probability")

	// ErrGenerationBound is returned when a generated sentence does not
	// reach </s> within Config.MaxSteps tokens.
	ErrGenerationBound = errors.New("generation exceeded step bound")
)
