package colour

import "errors"

var (
	// ErrConfiguration is returned when a backend produced raw scheme data
	// that cannot be assembled, for example a missing role.
	ErrConfiguration = errors.New("invalid scheme data")

	// ErrInvalidTheme is returned for a theme other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidColorFormat is returned when a colour literal cannot be parsed.
	ErrInvalidColorFormat = errors.New("invalid color format")
)
