package service

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only accepted deadline format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var ErrDateFormat = errors.New("deadline must be a calendar date formatted as YYYY-MM-DD")

// DateFormatError describes deadline text that is not a valid YYYY-MM-DD date.
type DateFormatError struct {
	Input string
	Err   error
}

func (e *DateFormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse deadline %q: %v", e.Input, ErrDateFormat)
	}
	return fmt.Sprintf("parse deadline %q: %v", e.Input, e.Err)
}

func (e *DateFormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDateFormat}
	}
	return []error{ErrDateFormat, e.Err}
}

// ParseDate returns the Unix timestamp of midnight UTC on the given date.
func ParseDate(text string) (int64, error) {
	if !hasDateShape(text) {
		return 0, &DateFormatError{Input: text}
	}
	// time.Parse validates month and day ranges, including leap years.
	parsed, err := time.Parse(DateLayout, text)
	if err != nil {
		return 0, &DateFormatError{Input: text, Err: err}
	}
	return parsed.Unix(), nil
}

// hasDateShape reports whether text is exactly dddd-dd-dd. time.Parse alone
// would accept a signed year such as "+024".
func hasDateShape(text string) bool {
	if len(text) != len(DateLayout) {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
