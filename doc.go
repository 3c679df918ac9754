// Package strtool provides low-level string support routines: ASCII
// trimming and case mapping, delimiter-set splitting, prefix/suffix
// checks, bounded formatted-string rendering, display-width helpers, and
// line scanning from a stream.
//
// The package is byte-oriented. Trimming, case mapping, splitting, and
// prefix/suffix checks operate on single bytes and never allocate unless
// the result differs from the input. Unicode-aware case folding is out of
// scope; use the strings package or golang.org/x/text when locale
// correctness matters. The display-width helpers ([Width], [Pad],
// [Truncate], [Wrap]) are the exception: they measure terminal columns
// and are rune-aware.
//
// # Rendering
//
// [Render] and [RenderTo] build a string from a fmt template with an
// explicit two-pass buffer strategy: a pooled fixed-size buffer first,
// then at most one exactly-sized reallocation when the output does not
// fit. The output size is capped; a render that would exceed the cap
// fails with [ErrTooLarge] instead of allocating unboundedly:
//
//	s, err := strtool.Render("vertex %d at (%f, %f)", id, x, y)
//
// Unlike fmt.Sprintf, a malformed template is reported as an error
// ([ErrBadFormat]) rather than smuggled into the output:
//
//	_, err := strtool.Render("%d", "oops") // ErrBadFormat
//
// # Splitting
//
// [Split] treats its second argument as a set of single-byte delimiters,
// not a separator string. Every delimiter occurrence is a split point, so
// consecutive delimiters yield empty segments and a trailing delimiter
// yields a trailing empty segment:
//
//	strtool.Split("a,b,,c", ",")  // ["a" "b" "" "c"]
//	strtool.Split("a:b;c", ":;")  // ["a" "b" "c"]
//	strtool.Split("", ",")        // [""]
//
// # Line scanning
//
// [LineScanner] reads newline-terminated chunks into a reusable buffer
// and reports lengths, returning the [EOF] sentinel once the input is
// exhausted. A blank line reports length 0, never the sentinel:
//
//	sc := strtool.NewLineScanner(r)
//	for sc.ReadLine() != strtool.EOF {
//		process(sc.Text())
//	}
//
// [Lines] wraps the same machinery as an iterator for range-over-func
// loops.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrBadFormat] — a render template contained a malformed directive
//   - [ErrTooLarge] — a render exceeded the output size cap
//
// The trimming, case, splitting, and prefix/suffix operations cannot
// fail.
package strtool
