package SynDict

import (
	"errors"
	"fmt"

	"github.com/g-m-twostay/syntree/Dicts"
)

var (
	// ErrInputTooLong matches every *InputTooLongError through errors.Is.
	ErrInputTooLong = Dicts.ErrInputTooLong
	// ErrEmptyWord is returned when inserting the empty string.
	ErrEmptyWord = errors.New("empty word")
)

// InputTooLongError reports a record that breaks one of the size bounds:
// a word or synonym longer than MaxWordLen bytes, or more than MaxSynonyms synonyms.
type InputTooLongError struct {
	Field string // "word", "synonym" or "synonyms"
	Index int    // position of the offending synonym, -1 otherwise
	Len   int
	Limit int
}

func (e *InputTooLongError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s %d has length %d, limit is %d", e.Field, e.Index, e.Len, e.Limit)
	}
	return fmt.Sprintf("%s has length %d, limit is %d", e.Field, e.Len, e.Limit)
}

func (e *InputTooLongError) Is(target error) bool {
	return target == ErrInputTooLong
}
