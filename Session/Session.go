package Session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/g-m-twostay/syntree/Dicts"
)

// Options of a Session.
type Options struct {
	// Logger for skipped records and the final summary; slog.Default() if nil.
	Logger *slog.Logger
	// SkipInvalid makes the load phase skip records the dictionary rejects,
	// and records holding a token over MaxTokenLen, instead of aborting the
	// session.
	SkipInvalid bool
	// AfterLoad, if set, is called with the dictionary once every load
	// record has been read, before the first query.
	AfterLoad func(Dicts.Dictionary)
}

// Stats of a finished or aborted session.
type Stats struct {
	Loaded     int // records that created a new word
	Duplicates int // records whose word already existed
	Skipped    int // records rejected by the dictionary and skipped
	Queries    int
	Found      int
}

// Session drives a Dicts.Dictionary over a record stream: a count N, N load
// records, a count Q, then Q query words. Each query result goes to the Renderer.
type Session struct {
	dict Dicts.Dictionary
	r    Renderer
	log  *slog.Logger
	skip bool
	post func(Dicts.Dictionary)
}

// New Session loading into dict and rendering with r.
func New(dict Dicts.Dictionary, r Renderer, opts Options) *Session {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Session{dict: dict, r: r, log: l, skip: opts.SkipInvalid, post: opts.AfterLoad}
}

// Load reads the record count and that many load records from sc, inserting
// each complete record in order. Records after the declared count are left
// unread.
func (u *Session) Load(sc *Scanner, st *Stats) error {
	n, err := sc.Count("record count")
	if err != nil {
		return err
	}
	for i := range n {
		off := sc.Offset()
		rec, err := sc.ReadLoadRecord()
		if err != nil {
			if !u.skip || !errors.Is(err, Dicts.ErrInputTooLong) {
				return fmt.Errorf("load record %d: %w", i, err)
			}
			st.Skipped++
			u.log.Warn("skipping load record", "record", i, "token", off, "err", err)
			continue
		}
		before := u.dict.Len()
		if err := u.dict.Insert(rec.Word, rec.Synonyms); err != nil {
			if !u.skip {
				return fmt.Errorf("load record %d at token %d: %w", i, off, err)
			}
			st.Skipped++
			u.log.Warn("skipping load record", "record", i, "token", off, "word", rec.Word, "err", err)
			continue
		}
		if u.dict.Len() > before {
			st.Loaded++
		} else {
			st.Duplicates++
			u.log.Debug("duplicate word ignored", "record", i, "word", rec.Word)
		}
	}
	return nil
}

// Query reads the query count and that many words from sc, rendering the
// result of each lookup.
func (u *Session) Query(sc *Scanner, st *Stats) error {
	n, err := sc.Count("query count")
	if err != nil {
		return err
	}
	for i := range n {
		w, err := sc.Word("query")
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		path, out := u.dict.Lookup(w)
		st.Queries++
		if out.Found() {
			st.Found++
		}
		if err := u.r.Render(w, path, out); err != nil {
			return fmt.Errorf("rendering query %d: %w", i, err)
		}
	}
	return nil
}

// Run the whole session over in. Rendered output is flushed when the
// Renderer has a Flush method, also after a failure so that the results of
// the queries answered so far are kept.
func (u *Session) Run(in io.Reader) (st Stats, err error) {
	if f, ok := u.r.(interface{ Flush() error }); ok {
		defer func() {
			if ferr := f.Flush(); err == nil && ferr != nil {
				err = fmt.Errorf("flushing output: %w", ferr)
			}
		}()
	}
	sc := NewScanner(in)
	if err = u.Load(sc, &st); err != nil {
		return st, err
	}
	u.log.Debug("dictionary loaded", "words", u.dict.Len(), "duplicates", st.Duplicates, "skipped", st.Skipped)
	if u.post != nil {
		u.post(u.dict)
	}
	if err = u.Query(sc, &st); err != nil {
		return st, err
	}
	u.log.Info("session done", "words", u.dict.Len(), "queries", st.Queries, "found", st.Found)
	return st, nil
}
