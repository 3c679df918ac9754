package strtool

import (
	"bufio"
	"io"
	"iter"
)

// EOF is the sentinel returned by [LineScanner.ReadLine] once the input
// is exhausted. It is distinct from a blank line, which reports length 0.
const EOF = -1

// LineScanner reads newline-terminated chunks from a stream into a
// reusable buffer. Unlike bufio.Scanner it reports chunk lengths, has no
// line-length limit, and distinguishes a blank line (length 0) from end
// of input ([EOF]).
type LineScanner struct {
	r    *bufio.Reader
	buf  []byte
	err  error
	done bool
}

// NewLineScanner returns a LineScanner reading from r.
func NewLineScanner(r io.Reader) *LineScanner {
	return &LineScanner{r: bufio.NewReader(r)}
}

// ReadLine reads the next chunk, discarding its terminating newline, and
// returns the chunk's length. It returns [EOF] once the input is
// exhausted, starting with the call immediately after the last chunk. A
// final chunk without a trailing newline is returned normally.
func (s *LineScanner) ReadLine() int {
	if s.done {
		return EOF
	}
	s.buf = s.buf[:0]
	for {
		frag, err := s.r.ReadSlice('\n')
		s.buf = append(s.buf, frag...)
		if err == nil {
			break
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		// End of input, or a read error: no terminator remains. Either
		// way the stream is done; a partial final chunk is still a chunk.
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		if len(s.buf) == 0 {
			return EOF
		}
		return len(s.buf)
	}
	s.buf = s.buf[:len(s.buf)-1]
	return len(s.buf)
}

// Bytes returns the last chunk read. The slice is only valid until the
// next call to ReadLine.
func (s *LineScanner) Bytes() []byte { return s.buf }

// Text returns the last chunk read as a string.
func (s *LineScanner) Text() string { return string(s.buf) }

// Err returns the first non-EOF error encountered while reading, if any.
// A read error ends the scan the same way end of input does.
func (s *LineScanner) Err() error { return s.err }

// Lines yields each line from r in order, newlines discarded. It is a
// convenience wrapper around [LineScanner] for range-over-func loops;
// read errors silently end the sequence, so use a LineScanner directly
// when they must be observed.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := NewLineScanner(r)
		for sc.ReadLine() != EOF {
			if !yield(sc.Text()) {
				return
			}
		}
	}
}
