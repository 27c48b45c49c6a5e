package fs

import (
	"errors"
	"fmt"
)

// metadataFields is the number of ls -l columns before the name: permissions,
// links, owner, group, size, month, day, time-or-year.
const metadataFields = 8

// ErrMalformedLine marks a listing line that is not an entry.
var ErrMalformedLine = errors.New("malformed listing line")

// Parse turns one line of `ls -l` output into an Entry.
func Parse(line string) (Entry, error) {
	var tokens [metadataFields]string
	pos := 0
	for i := 0; i < metadataFields; i++ {
		pos = skipSpace(line, pos)
		start := pos
		for pos < len(line) && !isSpace(line[pos]) {
			pos++
		}
		if start == pos {
			return Entry{}, fmt.Errorf("%w: %d of %d fields", ErrMalformedLine, i, metadataFields)
		}
		tokens[i] = line[start:pos]
	}

	nameStart := skipSpace(line, pos)
	name := trimLineTerminator(line[nameStart:])
	if name == "" {
		return Entry{}, fmt.Errorf("%w: missing name", ErrMalformedLine)
	}

	return Entry{
		FullLine:    line,
		Prefix:      line[:nameStart],
		Name:        name,
		Permissions: tokens[0],
		Kind:        classify(tokens[0]),
	}, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// isSpace matches C isspace in the "C" locale.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func trimLineTerminator(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	return s
}
