package colorspace

import "errors"

var (
	// ErrInvalidFormat is returned when a hex string is not "#" followed by
	// exactly six hexadecimal digits.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrOutOfRange is returned when a channel, saturation or lightness
	// value lies outside its documented domain.
	ErrOutOfRange = errors.New("color value out of range")
)
