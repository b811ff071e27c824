// Package htmltitle extracts the first <title> element from HTML documents
// without reading past the closing tag.
package htmltitle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Result describes the outcome of a title scan.
type Result struct {
	Title string
	// Found is false when no complete title element precedes EOF.
	Found bool
	// BytesRead counts the bytes handed to the tokenizer before it stopped.
	BytesRead int64
}

// Extract scans the HTML file at path for its first <title> element.
func Extract(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open html: %w", err)
	}
	defer file.Close()

	res, err := ExtractReader(file)
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", path, err)
	}
	return res, nil
}

// ExtractReader scans r line by line and returns as soon as </title> is seen.
func ExtractReader(r io.Reader) (Result, error) {
	lines := &lineReader{br: bufio.NewReader(r)}
	z := html.NewTokenizer(lines)

	var (
		title   strings.Builder
		inTitle bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) {
				return Result{BytesRead: lines.n}, nil
			}
			return Result{BytesRead: lines.n}, err
		case html.StartTagToken, html.SelfClosingTagToken:
			// <title/> is not void; its text still follows.
			if tagAtom(z) == atom.Title {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				title.Write(z.Text())
			}
		case html.EndTagToken:
			if inTitle && tagAtom(z) == atom.Title {
				return Result{Title: title.String(), Found: true, BytesRead: lines.n}, nil
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

// lineReader hands out at most one line per Read so the tokenizer never
// buffers far beyond the token it is working on.
type lineReader struct {
	br      *bufio.Reader
	pending []byte
	n       int64
	err     error
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		if l.err != nil {
			return 0, l.err
		}
		line, err := l.br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			err = nil
		}
		l.pending = line
		l.err = err
		if len(line) == 0 && err != nil {
			return 0, err
		}
	}
	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	l.n += int64(n)
	return n, nil
}
