package vcs

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/wipac-dev/nextversion/lib/model"
)

// ListCommits enumerates the commits in (rangeStart, HEAD], newest first,
// with each commit's own changed files (not cumulative), like
// `git rev-list rangeStart..HEAD` + `git diff-tree --name-only -r` would.
// Any failure here is fatal for the run; transient errors are not retried.
func ListCommits(repoPath string, rangeStart string) ([]model.Commit, error) {
	gitRepo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening git repository at '%v'", repoPath)
	}

	boundary, err := gitRepo.ResolveRevision(plumbing.Revision(rangeStart))
	if err != nil {
		return nil, errors.Wrapf(err, "resolving range start '%v'", rangeStart)
	}

	gitHead, err := gitRepo.Head()
	if err != nil {
		return nil, errors.Wrap(err, "resolving HEAD")
	}

	excluded, err := excludedCommits(gitRepo, *boundary, gitHead.Hash())
	if err != nil {
		return nil, errors.Wrapf(err, "bounding range %v..HEAD", rangeStart)
	}

	iter, err := gitRepo.Log(&git.LogOptions{
		From:  gitHead.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "listing commits in %v..HEAD", rangeStart)
	}

	var result []model.Commit

	err = iter.ForEach(func(gitCommit *object.Commit) error {
		if excluded[gitCommit.Hash] {
			return nil
		}

		files, err := changedFiles(gitCommit)
		if err != nil {
			return err
		}

		result = append(result, model.NewCommit(gitCommit.Hash.String(), commitTitle(gitCommit), files))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking commits in %v..HEAD", rangeStart)
	}

	return result, nil
}

// excludedCommits collects the boundary and all its ancestors: the commits
// `git rev-list rangeStart..HEAD` leaves out. The HEAD walk filters against
// this set instead of stopping at the boundary hash, so commits merged from
// a branch cut before the boundary (older committer times) are still
// reported. A range start that is not an ancestor of HEAD makes the range
// meaningless and is an error.
func excludedCommits(gitRepo *git.Repository, boundary plumbing.Hash, head plumbing.Hash) (map[plumbing.Hash]bool, error) {
	boundaryCommit, err := gitRepo.CommitObject(boundary)
	if err != nil {
		return nil, errors.Wrapf(err, "reading commit %v", boundary)
	}

	headCommit, err := gitRepo.CommitObject(head)
	if err != nil {
		return nil, errors.Wrapf(err, "reading commit %v", head)
	}

	isAncestor, err := boundaryCommit.IsAncestor(headCommit)
	if err != nil {
		return nil, err
	}
	if !isAncestor {
		return nil, errors.Errorf("%v is not an ancestor of HEAD", boundary)
	}

	iter, err := gitRepo.Log(&git.LogOptions{From: boundary})
	if err != nil {
		return nil, err
	}

	result := map[plumbing.Hash]bool{}

	err = iter.ForEach(func(gitCommit *object.Commit) error {
		result[gitCommit.Hash] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// commitTitle is the subject line only, like `git show -s --format=%s`.
func commitTitle(gitCommit *object.Commit) string {
	title, _, _ := strings.Cut(gitCommit.Message, "\n")
	return strings.TrimSpace(title)
}

func changedFiles(gitCommit *object.Commit) ([]string, error) {
	stats, err := gitCommit.Stats()
	if err != nil {
		return nil, errors.Wrapf(err, "computing changed files of %v", gitCommit.Hash)
	}

	return lo.Map(stats, func(stat object.FileStat, _ int) string {
		return stat.Name
	}), nil
}
