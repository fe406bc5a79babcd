package Session

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/g-m-twostay/syntree/Dicts"
)

// MaxTokenLen is the longest token the Scanner returns, in bytes. Longer
// tokens are consumed whole and reported as a *TokenTooLongError.
const MaxTokenLen = 4096

// ErrMalformed matches every *MalformedError through errors.Is.
var ErrMalformed = errors.New("malformed input")

// MalformedError reports a record stream that cannot be read: a count that
// is not a non-negative integer, or input ending in the middle of a record.
type MalformedError struct {
	Offset int    // index of the offending token, counting from 0
	Token  string // empty at end of input
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed input at token %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed input at token %d %q: %s", e.Offset, e.Token, e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// TokenTooLongError reports a token over MaxTokenLen bytes. It matches
// Dicts.ErrInputTooLong. The token was skipped, so reading can go on.
type TokenTooLongError struct {
	Offset int
	Len    int
}

func (e *TokenTooLongError) Error() string {
	return fmt.Sprintf("token %d has length %d, limit is %d", e.Offset, e.Len, MaxTokenLen)
}

func (e *TokenTooLongError) Is(target error) bool {
	return target == Dicts.ErrInputTooLong
}

// Scanner splits a record stream into whitespace separated tokens.
type Scanner struct {
	sc   *bufio.Scanner
	off  int
	long int // length of the oversize token being dropped, 0 otherwise
}

// NewScanner reads tokens from r.
func NewScanner(r io.Reader) *Scanner {
	u := &Scanner{sc: bufio.NewScanner(r)}
	u.sc.Split(u.split)
	return u
}

// split is bufio.ScanWords, except that a token growing past MaxTokenLen is
// discarded as it streams in and then yields an empty token, with its
// length left in u.long. The buffer never has to hold it.
func (u *Scanner) split(data []byte, atEOF bool) (int, []byte, error) {
	if u.long > 0 {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 {
			u.long += len(data)
			if atEOF {
				return len(data), []byte{}, nil
			}
			return len(data), nil, nil
		}
		u.long += i
		return i, []byte{}, nil
	}
	adv, tok, err := bufio.ScanWords(data, atEOF)
	if err != nil || adv > 0 || tok != nil {
		if len(tok) > MaxTokenLen {
			u.long = len(tok)
			return adv, []byte{}, nil
		}
		return adv, tok, err
	}
	if len(data) > MaxTokenLen {
		u.long = len(data)
		return len(data), nil, nil
	}
	return 0, nil, nil
}

// Offset of the next token.
func (u *Scanner) Offset() int {
	return u.off
}

// Word returns the next token. what names the expected token in the error
// returned at end of input.
func (u *Scanner) Word(what string) (string, error) {
	if !u.sc.Scan() {
		if err := u.sc.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", &MalformedError{Offset: u.off, Reason: "unexpected end of input, want " + what}
	}
	u.off++
	if u.long > 0 {
		err := &TokenTooLongError{Offset: u.off - 1, Len: u.long}
		u.long = 0
		return "", fmt.Errorf("reading %s: %w", what, err)
	}
	return u.sc.Text(), nil
}

// Count returns the next token as a non-negative integer.
func (u *Scanner) Count(what string) (int, error) {
	tok, err := u.Word(what)
	var tl *TokenTooLongError
	if errors.As(err, &tl) {
		return 0, &MalformedError{Offset: tl.Offset, Reason: what + " is not a non-negative integer"}
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(tok, 10, 31)
	if err != nil {
		return 0, &MalformedError{Offset: u.off - 1, Token: tok, Reason: what + " is not a non-negative integer"}
	}
	return int(n), nil
}

// LoadRecord is one word with its synonyms: "word k syn_1 .. syn_k".
type LoadRecord struct {
	Word     string
	Synonyms []string
}

// ReadLoadRecord reads a whole record; nothing is returned for a partial one.
// A word or synonym over MaxTokenLen does not stop the read: the rest of the
// record is consumed and an error matching Dicts.ErrInputTooLong is returned,
// leaving the Scanner at the start of the next record.
func (u *Scanner) ReadLoadRecord() (LoadRecord, error) {
	var r LoadRecord
	var long error
	word := func(what string) (string, error) {
		w, err := u.Word(what)
		if err != nil && errors.Is(err, Dicts.ErrInputTooLong) {
			if long == nil {
				long = err
			}
			return "", nil
		}
		return w, err
	}
	var err error
	if r.Word, err = word("word"); err != nil {
		return LoadRecord{}, err
	}
	n, err := u.Count("synonym count")
	if err != nil {
		return LoadRecord{}, err
	}
	for range n {
		s, err := word("synonym")
		if err != nil {
			return LoadRecord{}, err
		}
		r.Synonyms = append(r.Synonyms, s)
	}
	if long != nil {
		return LoadRecord{}, long
	}
	return r, nil
}
