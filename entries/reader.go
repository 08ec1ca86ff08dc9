package entries

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/statictree"
)

// Reader streams (path, value) entries from a line-oriented text source.
//
// Each entry occupies one line
//
//	api/v1/users      = list-users
//	api/v1/users/{id} = show-user
//
// The path is split at the separator (default '/'), empty segments are
// dropped and segments and value are trimmed of white space. Blank lines and
// lines starting with '#' are skipped. A line
//
//	@name routing-table
//
// sets the identifier of the source.
type Reader struct {
	scanner    *bufio.Scanner
	separator  string
	identifier string
	line       int
	path       []string
}

var _ statictree.EntryReader[string, string] = (*Reader)(nil)

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithSeparator sets the path separator.
func WithSeparator(sep string) ReaderOption {
	return func(r *Reader) {
		if sep != "" {
			r.separator = sep
		}
	}
}

// NewReader creates a reader for entries from reader.
func NewReader(reader io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{
		scanner:   bufio.NewScanner(reader),
		separator: "/",
		path:      make([]string, 0, 16),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Identifier returns the name set by an '@name' line, if any has been read.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (path, value).
// It returns io.EOF when exhausted.
// The returned path slice is reused by subsequent calls.
func (r *Reader) Next() ([]string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := directive(line, "@name"); ok {
			r.identifier = name
			continue
		}
		path, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, "", fmt.Errorf("entries: line %d: missing '=' in %q", r.line, line)
		}
		r.decodePath(path)
		return r.path, strings.TrimSpace(value), nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, "", err
	}
	return nil, "", io.EOF
}

// directive reports whether line is the directive dir, followed by white
// space or the end of line, and returns its argument.
func directive(line, dir string) (string, bool) {
	arg, ok := strings.CutPrefix(line, dir)
	if !ok || (arg != "" && arg[0] != ' ' && arg[0] != '\t') {
		return "", false
	}
	return strings.TrimSpace(arg), true
}

func (r *Reader) decodePath(path string) {
	r.path = r.path[:0]
	for _, segment := range strings.Split(path, r.separator) {
		if segment = strings.TrimSpace(segment); segment != "" {
			r.path = append(r.path, segment)
		}
	}
}
