package bump

import (
	"strings"

	"github.com/samber/lo"

	"github.com/wipac-dev/nextversion/lib/model"
)

// Verdict is one commit's individual contribution to the bump decision.
// Tokenless commits are not disqualified here: whether they force a patch
// depends on the whole range, so that call belongs to Decide.
type Verdict int

const (
	VerdictMajor Verdict = iota
	VerdictMinor
	VerdictPatch
	VerdictNoBump
	VerdictTokenless
)

// bumpTokens maps each kind to the literal markers recognized in a commit
// title. Precedence comes from model.KindsByPrecedence, never from marker
// position in the title.
var bumpTokens = map[model.BumpKind][]string{
	model.MajorBump: {"[major]"},
	model.MinorBump: {"[minor]"},
	model.PatchBump: {"[patch]", "[fix]", "[bump]"},
	model.NoBump:    {"[no-bump]", "[no_bump]", "[nobump]"},
}

var verdictByKind = map[model.BumpKind]Verdict{
	model.MajorBump: VerdictMajor,
	model.MinorBump: VerdictMinor,
	model.PatchBump: VerdictPatch,
	model.NoBump:    VerdictNoBump,
}

func (v Verdict) String() string {
	if v == VerdictTokenless {
		return "tokenless"
	}
	for kind, verdict := range verdictByKind {
		if verdict == v {
			return kind.String()
		}
	}
	return "<unknown>"
}

// Classify inspects one commit's title for bump tokens. Case-insensitive;
// when markers of different kinds appear in one title, the
// higher-precedence kind wins. Total over any well-formed commit.
func Classify(commit model.Commit) Verdict {
	title := commit.TitleLower()

	for _, kind := range model.KindsByPrecedence {
		if hasBumpToken(kind, title) {
			return verdictByKind[kind]
		}
	}

	return VerdictTokenless
}

func hasBumpToken(kind model.BumpKind, titleLower string) bool {
	return lo.SomeBy(bumpTokens[kind], func(token string) bool {
		return strings.Contains(titleLower, token)
	})
}
