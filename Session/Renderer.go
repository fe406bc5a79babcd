package Session

import (
	"bufio"
	"io"

	"github.com/g-m-twostay/syntree/Dicts"
)

// Renderer receives the result of every query in order.
type Renderer interface {
	Render(word string, path Dicts.Path, out Dicts.Outcome) error
}

// AppendTrace appends the text form of one query result to dst:
//
//	[k1->k2->k3]          found, followed by "s1,s2\n" or
//	                      " No synonym found for the word: <word>\n"
//	[k1->k2->?]           not found, followed by "-\n"
//	?]                    not found in an empty tree, followed by "-\n"
func AppendTrace(dst []byte, word string, path Dicts.Path, out Dicts.Outcome) []byte {
	for i, k := range path {
		if i == 0 {
			dst = append(dst, '[')
		}
		dst = append(dst, k...)
		if i < len(path)-1 || !out.Found() {
			dst = append(dst, "->"...)
		}
	}
	if !out.Found() {
		return append(dst, "?]\n-\n"...)
	}
	dst = append(dst, "]\n"...)
	if syn := out.Synonyms(); len(syn) > 0 {
		for i, s := range syn {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, s...)
		}
		return append(dst, '\n')
	}
	dst = append(dst, " No synonym found for the word: "...)
	dst = append(dst, word...)
	return append(dst, '\n')
}

// TextRenderer writes query results to an io.Writer in the format of AppendTrace.
// Output is buffered; call Flush when done.
type TextRenderer struct {
	w   *bufio.Writer
	buf []byte
}

// NewTextRenderer writes to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: bufio.NewWriter(w)}
}

func (u *TextRenderer) Render(word string, path Dicts.Path, out Dicts.Outcome) error {
	u.buf = AppendTrace(u.buf[:0], word, path, out)
	_, err := u.w.Write(u.buf)
	return err
}

func (u *TextRenderer) Flush() error {
	return u.w.Flush()
}
