package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a parsed version number. Under StyleMajorMinor the Patch
// component is always 0 and never serialized.
type Version struct {
	Major int
	Minor int
	Patch int
}

var (
	ErrMalformedVersionTag = errors.New("malformed version tag")
	ErrInvalidBumpKind     = errors.New("invalid bump kind")
)

// ParseVersion requires exactly 3 (X.Y.Z) or 2 (X.Y) non-negative integer
// components. Anything else is a malformed tag.
func ParseVersion(tag string, style VersionStyle) (Version, error) {
	parts := strings.Split(tag, ".")

	components, err := styleComponents(style)
	if err != nil {
		return Version{}, err
	}

	if len(parts) != components {
		return Version{}, errors.Wrapf(ErrMalformedVersionTag,
			"'%v' does not have %v components as required by style %v", tag, components, style)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, errors.Wrapf(ErrMalformedVersionTag,
				"'%v' has a non-numeric or negative component '%v' (style %v)", tag, part, style)
		}
		nums[i] = n
	}

	result := Version{Major: nums[0], Minor: nums[1]}
	if style == StyleSemver {
		result.Patch = nums[2]
	}
	return result, nil
}

func styleComponents(style VersionStyle) (int, error) {
	switch style {
	case StyleSemver:
		return 3, nil
	case StyleMajorMinor:
		return 2, nil
	default:
		return 0, errors.Wrapf(ErrInvalidVersionStyle, "'%v'", style)
	}
}

func (v Version) Format(style VersionStyle) string {
	if style == StyleMajorMinor {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump computes the next version. It never mutates the receiver.
//
// Bump math:
//   - major: (M, N, P) -> (M+1, 0, 0)
//   - minor: (M, N, P) -> (M, N+1, 0)
//   - patch: (M, N, P) -> (M, N, P+1), but for X.Y style patch behaves
//     like minor since there is no third component to increment
//
// NoBump is a veto, not an increment; asking to bump on it is a logic
// error in the caller.
func (v Version) Bump(kind BumpKind, style VersionStyle) (Version, error) {
	if _, err := styleComponents(style); err != nil {
		return Version{}, err
	}

	switch kind {
	case MajorBump:
		return Version{Major: v.Major + 1}, nil

	case MinorBump:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil

	case PatchBump:
		if style == StyleMajorMinor {
			return Version{Major: v.Major, Minor: v.Minor + 1}, nil
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil

	default:
		return Version{}, errors.Wrapf(ErrInvalidBumpKind, "cannot increment on '%v'", kind)
	}
}
