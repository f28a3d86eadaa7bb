package model

import (
	"strings"

	"github.com/pkg/errors"
)

type VersionStyle int

const (
	// StyleSemver is the default X.Y.Z style, ex: 1.12.3
	StyleSemver VersionStyle = iota
	// StyleMajorMinor is the X.Y style, ex: 0.51
	StyleMajorMinor
)

var ErrInvalidVersionStyle = errors.New("invalid version style")

func (s VersionStyle) String() string {
	switch s {
	case StyleSemver:
		return "X.Y.Z"
	case StyleMajorMinor:
		return "X.Y"
	default:
		return "<unknown>"
	}
}

// ParseStyle normalizes and validates a style selector. An empty string
// means the default X.Y.Z style.
func ParseStyle(s string) (VersionStyle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "X.Y.Z":
		return StyleSemver, nil
	case "X.Y":
		return StyleMajorMinor, nil
	default:
		return StyleSemver, errors.Wrapf(ErrInvalidVersionStyle, "'%v'", s)
	}
}
