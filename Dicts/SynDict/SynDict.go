package SynDict

import (
	"fmt"

	"github.com/g-m-twostay/syntree/Dicts"
	"github.com/g-m-twostay/syntree/Trees"
	"github.com/xlab/treeprint"
)

// SynDict is a Dicts.Dictionary backed by a Trees.AVLTree keyed by word.
// Every record is checked against MaxWordLen and MaxSynonyms before it
// reaches the tree, so an oversize record never changes it.
// SynDict is not safe for concurrent use.
type SynDict struct {
	tree *Trees.AVLTree[string, Synonyms]
}

var _ Dicts.Dictionary = (*SynDict)(nil)

// New returns an empty SynDict.
func New() *SynDict {
	return &SynDict{tree: Trees.New[string, Synonyms]()}
}

func checkWord(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	if len(word) > MaxWordLen {
		return &InputTooLongError{Field: "word", Index: -1, Len: len(word), Limit: MaxWordLen}
	}
	return nil
}

// Insert [Dicts.Dictionary.Insert]. Returns an error matching ErrInputTooLong
// or ErrEmptyWord when the record is rejected.
func (u *SynDict) Insert(word string, synonyms []string) error {
	_, err := u.Add(word, synonyms)
	return err
}

// Add is Insert that also reports whether word was new.
func (u *SynDict) Add(word string, synonyms []string) (bool, error) {
	if err := checkWord(word); err != nil {
		return false, err
	}
	s, err := NewSynonyms(synonyms...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", word, err)
	}
	return u.tree.Insert(word, s), nil
}

// Lookup [Dicts.Dictionary.Lookup]. The returned path and synonyms are fresh
// slices owned by the caller.
func (u *SynDict) Lookup(word string) (Dicts.Path, Dicts.Outcome) {
	s, path := u.tree.Search(word, nil)
	if s == nil {
		return path, Dicts.NotFound
	}
	return path, Dicts.Found(s.Words())
}

// Len [Dicts.Dictionary.Len]
func (u *SynDict) Len() int {
	return int(u.tree.Size())
}

// Height of the underlying tree.
func (u *SynDict) Height() int {
	return int(u.tree.Height())
}

// Clear releases every entry.
func (u *SynDict) Clear() {
	u.tree.Clear()
}

// Dump renders the shape of the tree, one node per line with the side it
// hangs from and its number of synonyms.
func (u *SynDict) Dump() string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%d words, height %d", u.Len(), u.Height()))
	st := []treeprint.Tree{root}
	u.tree.Walk(func(k string, s *Synonyms, side Trees.Side) bool {
		st = append(st, st[len(st)-1].AddMetaBranch(side.String(), fmt.Sprintf("%s (%d)", k, s.Len())))
		return true
	}, func() {
		st = st[:len(st)-1]
	})
	return root.String()
}
