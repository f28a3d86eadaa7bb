package bump

import (
	"github.com/samber/lo"

	"github.com/wipac-dev/nextversion/lib/consoles"
	"github.com/wipac-dev/nextversion/lib/ignores"
	"github.com/wipac-dev/nextversion/lib/model"
)

// Decide combines the per-commit verdicts for the whole range into one
// decision. The second result is false when nothing in the range signals a
// bump either way; a (NoBump, true) result means the range was explicitly
// suppressed, which is a different outcome for reporting even though
// neither emits a version.
//
// The cascade, first matching rule wins:
//  1. any commit tagged major                        -> major
//  2. any commit tagged minor                        -> minor
//  3. any commit tagged patch                        -> patch
//  4. some no-bump tag and no effective tokenless    -> no-bump (veto)
//  5. some effective tokenless commit                -> patch if forcePatch,
//     else no decision
//  6. otherwise                                      -> no decision
//
// A tokenless commit is "effective" when its own changeset has at least one
// non-ignored path. An empty changeset carries no forcing weight. The
// no-bump veto is absolute: forcePatch never upgrades a vetoed range.
func Decide(commits []model.Commit, matcher *ignores.Matcher, forcePatch bool, console consoles.Console) (model.BumpKind, bool) {
	verdicts := lo.Map(commits, func(c model.Commit, _ int) Verdict {
		return Classify(c)
	})

	logCensus(commits, verdicts, console)

	for _, kind := range []model.BumpKind{model.MajorBump, model.MinorBump, model.PatchBump} {
		tagged := verdictByKind[kind]
		if i := lo.IndexOf(verdicts, tagged); i >= 0 {
			console.Printf("Decision: %v, from commit %v: %v\n", kind, commits[i].Hash, commits[i].Title)
			return kind, true
		}
	}

	anyNoBump := lo.Contains(verdicts, VerdictNoBump)
	tokenlessEffective := hasEffectiveTokenless(commits, verdicts, matcher, console)

	switch {
	case anyNoBump && !tokenlessEffective:
		console.Printf("Decision: no-bump, explicitly suppressed by a [no-bump] commit\n")
		return model.NoBump, true

	case tokenlessEffective && forcePatch:
		console.Printf("Decision: patch, forced for tokenless commits with non-ignored changes\n")
		return model.PatchBump, true

	case tokenlessEffective:
		console.Printf("Decision: none, tokenless changes found but force-patching is off\n")
		return model.NoBump, false

	default:
		console.Printf("Decision: none, commit log(s) don't signify a version bump\n")
		return model.NoBump, false
	}
}

func hasEffectiveTokenless(commits []model.Commit, verdicts []Verdict, matcher *ignores.Matcher, console consoles.Console) bool {
	for i, commit := range commits {
		if verdicts[i] != VerdictTokenless {
			continue
		}

		if len(commit.ChangedFiles) == 0 {
			console.Printf("Commit %v is tokenless with an empty changeset: ignored\n", commit.Hash)
			continue
		}

		if path, found := matcher.FirstNotIgnored(commit.ChangedFiles); found {
			console.Printf("Commit %v changed a non-ignored file: %v\n", commit.Hash, path)
			return true
		}

		console.Printf("Commit %v only changed ignored files\n", commit.Hash)
	}

	return false
}

func logCensus(commits []model.Commit, verdicts []Verdict, console consoles.Console) {
	tokenless := lo.Count(verdicts, VerdictTokenless)
	noBump := lo.Count(verdicts, VerdictNoBump)

	console.Printf("Found %v commits (%v tagged, %v tokenless, %v no-bump)\n",
		len(commits), len(commits)-tokenless-noBump, tokenless, noBump)

	console.PushPrefix("   ")
	for i, commit := range commits {
		console.Printf("%v %v: %v\n", commit.Hash, verdicts[i], commit.Title)
	}
	console.PopPrefix()
}
