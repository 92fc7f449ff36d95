// Package split partitions a concatenated YAML stream into documents by line markers.
//
// A line of "---" (optionally followed by spaces) always starts a new document, a line of
// "..." ends the current one, and any other line is document content. Content seen while
// no document is open starts one implicitly, so a leading "---" is optional.
//
// The input is never parsed as YAML.
package split

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	docStart = regexp.MustCompile(`^--- *$`)
	docEnd   = regexp.MustCompile(`^\.\.\. *$`)
)

// ErrInvalidText is returned when an input line is not valid UTF-8.
var ErrInvalidText = errors.New("line is not valid UTF-8 text")

// Writer receives the content lines of one document.
type Writer interface {
	WriteLine(line string) error
	Close() error
}

// Opener creates the Writer for the next document.
type Opener interface {
	Open() (Writer, error)
}

// OpenerFunc adapts a function to an Opener.
type OpenerFunc func() (Writer, error)

// Open calls f.
func (f OpenerFunc) Open() (Writer, error) { return f() }

// Stats summarises a completed split.
type Stats struct {
	Lines     int // input lines read, markers included
	Documents int // writers opened
}

type splitter struct {
	open  Opener
	cur   Writer // nil while no document is open
	stats Stats
}

// Split reads r to EOF and routes each content line to the current document.
// The open document, if any, is closed before Split returns, also on error.
func Split(r io.Reader, open Opener) (Stats, error) {
	s := &splitter{open: open}
	err := s.run(bufio.NewReader(r))
	if cerr := s.closeCurrent(); err == nil {
		err = cerr
	}
	return s.stats, err
}

func (s *splitter) run(br *bufio.Reader) error {
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return fmt.Errorf("read input: %w", rerr)
		}
		if line == "" && rerr == io.EOF {
			return nil
		}
		s.stats.Lines++
		if err := s.handle(trimEOL(line)); err != nil {
			return err
		}
		if rerr == io.EOF {
			return nil
		}
	}
}

func (s *splitter) handle(line string) error {
	if !utf8.ValidString(line) {
		return fmt.Errorf("line %d: %w", s.stats.Lines, ErrInvalidText)
	}
	switch {
	case docStart.MatchString(line):
		if err := s.closeCurrent(); err != nil {
			return err
		}
		return s.openNext()
	case docEnd.MatchString(line):
		return s.closeCurrent()
	default:
		if s.cur == nil {
			if err := s.openNext(); err != nil {
				return err
			}
		}
		return s.cur.WriteLine(line)
	}
}

func (s *splitter) openNext() error {
	w, err := s.open.Open()
	if err != nil {
		return err
	}
	s.cur = w
	s.stats.Documents++
	return nil
}

func (s *splitter) closeCurrent() error {
	if s.cur == nil {
		return nil
	}
	w := s.cur
	s.cur = nil
	return w.Close()
}

// trimEOL drops the line terminator, treating "\r\n" like "\n". A "\r" with no
// following "\n" is content.
func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
