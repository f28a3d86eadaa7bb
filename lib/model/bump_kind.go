package model

type BumpKind int

const (
	MajorBump BumpKind = iota
	MinorBump
	PatchBump
	NoBump
)

// KindsByPrecedence is the authoritative precedence order. Everything that
// ranks kinds (token scanning, aggregation) iterates this slice instead of
// relying on iota ordering.
var KindsByPrecedence = []BumpKind{MajorBump, MinorBump, PatchBump, NoBump}

func (k BumpKind) String() string {
	switch k {
	case MajorBump:
		return "major"
	case MinorBump:
		return "minor"
	case PatchBump:
		return "patch"
	case NoBump:
		return "no-bump"
	default:
		return "<unknown>"
	}
}
