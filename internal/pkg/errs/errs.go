package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so Is(err, markErr) holds while the original cause
// stays readable in %+v output. Marks are only visible to Is below, not to
// the standard library's errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels through both wrap chains and marks. Every sentinel
// comparison in this codebase goes through here.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
