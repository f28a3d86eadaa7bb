package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/wipac-dev/nextversion/lib/bump"
	"github.com/wipac-dev/nextversion/lib/consoles"
	"github.com/wipac-dev/nextversion/lib/ignores"
	"github.com/wipac-dev/nextversion/lib/model"
	"github.com/wipac-dev/nextversion/lib/vcs"
)

// Options is the whole configuration of a run, built once at startup and
// passed by parameter. No component reads ambient state.
type Options struct {
	Tag         string
	FirstCommit string
	Style       string
	RepoPath    string
	IgnorePaths []string
	ForcePatch  bool
}

type CommitLister func(repoPath string, rangeStart string) ([]model.Commit, error)

type Runner struct {
	console consoles.Console
	out     io.Writer

	// ListCommits is the VCS collaborator. Tests swap it for a fake.
	ListCommits CommitLister
}

func New(console consoles.Console, out io.Writer) *Runner {
	return &Runner{
		console:     console,
		out:         out,
		ListCommits: vcs.ListCommits,
	}
}

// Run computes the next version and writes exactly one line to out when a
// bump is decided, nothing otherwise. A silent run is a success: the only
// errors are malformed configuration and VCS failures.
func (r *Runner) Run(opts *Options) error {
	tag := normalizeTag(opts.Tag)

	style, err := model.ParseStyle(opts.Style)
	if err != nil {
		return err
	}

	r.console.Printf("Current version: %v (style %v)\n", tag, style)
	r.console.Printf("Range start: %v\n", opts.FirstCommit)

	current, err := model.ParseVersion(tag, style)
	if err != nil {
		return err
	}

	matcher, err := ignores.NewMatcher(opts.IgnorePaths)
	if err != nil {
		return err
	}

	commits, err := r.ListCommits(opts.RepoPath, opts.FirstCommit)
	if err != nil {
		return err
	}

	kind, decided := bump.Decide(commits, matcher, opts.ForcePatch, r.console)
	if !decided {
		return nil
	}
	if kind == model.NoBump {
		return nil
	}

	next, err := current.Bump(kind, style)
	if err != nil {
		return err
	}

	r.console.Printf("Next version: %v\n", next.Format(style))

	_, err = fmt.Fprintln(r.out, next.Format(style))
	return err
}

// normalizeTag case-folds the tag and strips any run of leading 'v's used
// by release tags, so 'v1.2.3', 'V1.2.3', and 'vV1.2.3' all parse as
// '1.2.3'.
func normalizeTag(tag string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(tag)), "v")
}
