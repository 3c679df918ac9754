package strtool

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBadFormat = errors.New("malformed format")
	ErrTooLarge  = errors.New("rendered output too large")
)

const (
	// renderBufferSize is the capacity of the pooled first-pass buffer.
	// Output that fits is returned without a second allocation.
	renderBufferSize = 512

	// maxRenderSize caps the size of a single rendered string.
	maxRenderSize = 64 << 20
)

// boundedWriter writes into a fixed-capacity slice and counts every byte
// offered, so after a render pass total holds the full would-be output
// length even when the buffer was too small to store it.
type boundedWriter struct {
	buf   []byte
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if room := cap(w.buf) - len(w.buf); room > 0 {
		if room > len(p) {
			room = len(p)
		}
		w.buf = append(w.buf, p[:room]...)
	}
	w.total += len(p)
	return len(p), nil
}

func (w *boundedWriter) reset() {
	w.buf = w.buf[:0]
	w.total = 0
}

var renderPool = sync.Pool{
	New: func() any {
		return &boundedWriter{buf: make([]byte, 0, renderBufferSize)}
	},
}

// Render formats args according to a fmt template and returns the
// resulting string.
//
// The common case renders in a single pass into a pooled fixed-size
// buffer. When the output is larger, exactly one buffer of the exact
// output size is allocated and the template is rendered once more; there
// is never more than one reallocation per call. Output larger than an
// internal cap (64 MiB) fails with [ErrTooLarge] before the large
// allocation is attempted.
//
// A template with a malformed or mismatched directive fails with
// [ErrBadFormat] and an empty string. Detection relies on the %! markers
// fmt embeds in its output, so a template that legitimately renders the
// literal text "%!" is also reported as malformed.
func Render(format string, args ...any) (string, error) {
	return render(format, args, maxRenderSize)
}

// RenderTo renders like [Render] but stores the result into *dst,
// replacing its previous contents, and returns the rendered length. On
// error *dst is set to the empty string and the returned length is -1.
func RenderTo(dst *string, format string, args ...any) (int, error) {
	s, err := render(format, args, maxRenderSize)
	*dst = s
	if err != nil {
		return -1, err
	}
	return len(s), nil
}

func render(format string, args []any, limit int) (string, error) {
	bw := renderPool.Get().(*boundedWriter)
	defer func() {
		bw.reset()
		renderPool.Put(bw)
	}()

	// First pass: the output length is reported in full even when the
	// buffer truncates.
	fmt.Fprintf(bw, format, args...)
	n := bw.total

	out := bw.buf
	if n > cap(bw.buf) {
		if n > limit {
			return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, n, limit)
		}
		// Second pass into a buffer of exactly the reported size. The
		// args slice is re-iterated from the start, so nothing was
		// consumed by the first pass.
		exact := &boundedWriter{buf: make([]byte, 0, n)}
		fmt.Fprintf(exact, format, args...)
		out = exact.buf
	}

	if badFormat(out) {
		return "", fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	return string(out), nil
}

// badFormat reports whether rendered output carries a fmt error marker.
// All fmt failure modes (bad verb, wrong type, missing or extra args)
// emit a marker starting with "%!".
func badFormat(out []byte) bool {
	for i := 0; i+1 < len(out); i++ {
		if out[i] == '%' && out[i+1] == '!' {
			return true
		}
	}
	return false
}
