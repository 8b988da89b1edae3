// Package errs is the single import point for error construction. It wraps
// cockroachdb/errors so that wrapped errors carry a stack trace and marks
// survive wrapping.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap records the caller's frame, not this helper's.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.WrapWithDepth(1, err, msg)
}

func New(msg string) error {
	return cr.NewWithDepth(1, msg)
}

// Mark tags err so that Is(err, mark) holds; a nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is also matches marks applied with Mark, which the standard library does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and returns at most maxLines
// non-blank lines. maxLines <= 0 means no limit.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
