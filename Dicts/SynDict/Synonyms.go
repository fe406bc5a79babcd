package SynDict

const (
	// MaxWordLen is the longest word or synonym accepted, in bytes.
	MaxWordLen = 30
	// MaxSynonyms is the most synonyms a word can carry.
	MaxSynonyms = 10
)

// Synonyms is a bounded, ordered list of words. It holds at most MaxSynonyms
// entries of at most MaxWordLen bytes each; Append refuses anything beyond that.
// The zero value is an empty list.
type Synonyms struct {
	words []string
}

// NewSynonyms builds a list from words, keeping their order. words is copied.
func NewSynonyms(words ...string) (Synonyms, error) {
	if len(words) > MaxSynonyms {
		return Synonyms{}, &InputTooLongError{Field: "synonyms", Index: -1, Len: len(words), Limit: MaxSynonyms}
	}
	s := Synonyms{words: make([]string, 0, len(words))}
	for _, w := range words {
		if err := s.Append(w); err != nil {
			return Synonyms{}, err
		}
	}
	return s, nil
}

// Append w to the end of the list.
func (s *Synonyms) Append(w string) error {
	if len(s.words) == MaxSynonyms {
		return &InputTooLongError{Field: "synonyms", Index: -1, Len: len(s.words) + 1, Limit: MaxSynonyms}
	}
	if len(w) > MaxWordLen {
		return &InputTooLongError{Field: "synonym", Index: len(s.words), Len: len(w), Limit: MaxWordLen}
	}
	s.words = append(s.words, w)
	return nil
}

// Len of the list.
func (s Synonyms) Len() int {
	return len(s.words)
}

// Words returns a copy of the list, never nil.
func (s Synonyms) Words() []string {
	return append(make([]string, 0, len(s.words)), s.words...)
}
