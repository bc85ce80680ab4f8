package certify

import "errors"

// Input errors: the only failures the compositor surfaces. Font and
// measurement problems are absorbed with documented fallbacks and never
// reach the caller.
var (
	// ErrTemplateDecode reports template bytes no registered image format
	// could decode.
	ErrTemplateDecode = errors.New("template image cannot be decoded")
	// ErrTemplateBounds reports a decoded template with zero-sized
	// dimensions, leaving no geometry to fall back on.
	ErrTemplateBounds = errors.New("template image has zero-sized dimensions")
	// ErrEmptyStudentName reports a blank student name.
	ErrEmptyStudentName = errors.New("student name must not be empty")
	// ErrZeroAreaRect reports a placeholder rectangle with x2 <= x1 or
	// y2 <= y1.
	ErrZeroAreaRect = errors.New("placeholder rectangle has zero area")
)
