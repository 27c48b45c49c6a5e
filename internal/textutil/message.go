package textutil

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMessageTruncated is returned alongside the shortened text when a
// formatted message did not fit its buffer.
var ErrMessageTruncated = errors.New("message truncated")

// FormatBounded formats like fmt.Sprintf but never returns more than
// limit-1 bytes, leaving room for a terminator the way a fixed C buffer
// would. The cut never splits a UTF-8 sequence.
func FormatBounded(limit int, format string, args ...any) (string, error) {
	msg := fmt.Sprintf(format, args...)
	if limit <= 0 {
		return "", ErrMessageTruncated
	}
	if len(msg) < limit {
		return msg, nil
	}
	cut := limit - 1
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut], fmt.Errorf("%w: %d of %d bytes kept", ErrMessageTruncated, cut, len(msg))
}

