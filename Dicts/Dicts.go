package Dicts

import "errors"

// ErrInputTooLong is matched by every error reporting a word, synonym or
// synonym list over the size bounds of a Dictionary or of its input.
var ErrInputTooLong = errors.New("input too long")

// Dictionary maps a word to its synonyms and answers point queries with the
// trace of keys the lookup visited.
type Dictionary interface {
	//Insert word with its synonyms. Inserting a word that already exists is
	//a no-op and not an error: the first synonym list is kept. An error is
	//only returned when the record breaks the size bounds of the implementation.
	Insert(word string, synonyms []string) error
	//Lookup word. The path lists the visited keys root first and ends at the
	//matching key or at the last key before the descent ran off the tree.
	Lookup(word string) (Path, Outcome)
	//Len is the number of words.
	Len() int
}

// Path is the ordered sequence of keys visited during a lookup.
type Path []string

// Outcome of a lookup: either Found with the synonyms of the word, possibly
// none, or NotFound.
// The zero value is NotFound.
type Outcome struct {
	synonyms []string
	found    bool
}

// NotFound is the outcome of a lookup that ran off the tree.
var NotFound = Outcome{}

// Found returns the outcome of a lookup that reached the word.
func Found(synonyms []string) Outcome {
	return Outcome{synonyms: synonyms, found: true}
}

// Found reports whether the word was reached.
func (o Outcome) Found() bool {
	return o.found
}

// Synonyms of the found word in insertion order. nil when not found.
func (o Outcome) Synonyms() []string {
	return o.synonyms
}
