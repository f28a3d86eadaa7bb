package vcs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"

	"github.com/wipac-dev/nextversion/lib/vcs"
)

func TestListCommits(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	boundary := repo.commit("initial", "file0.txt")
	repo.commit("fix: bug [patch]\n\nlonger description", "src/a.py")
	repo.commit("docs: update readme", "docs/README.md")

	commits, err := vcs.ListCommits(repo.dir, boundary.String())
	assert.NoError(t, err)
	assert.Len(t, commits, 2)

	// newest first, titles are the subject line only
	assert.Equal(t, "docs: update readme", commits[0].Title)
	assert.Equal(t, []string{"docs/README.md"}, commits[0].ChangedFiles)

	assert.Equal(t, "fix: bug [patch]", commits[1].Title)
	assert.Equal(t, []string{"src/a.py"}, commits[1].ChangedFiles)
}

func TestListCommitsPerCommitFiles(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	boundary := repo.commit("initial", "file0.txt")
	repo.commit("two files", "src/a.py", "src/b.py")
	repo.commit("one file", "src/c.py")

	commits, err := vcs.ListCommits(repo.dir, boundary.String())
	assert.NoError(t, err)
	assert.Len(t, commits, 2)

	// files are per commit, not cumulative over the range
	assert.Equal(t, []string{"src/c.py"}, commits[0].ChangedFiles)
	assert.ElementsMatch(t, []string{"src/a.py", "src/b.py"}, commits[1].ChangedFiles)
}

func TestListCommitsEmptyChangeset(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	boundary := repo.commit("initial", "file0.txt")
	repo.emptyCommit("Trigger CI pipeline")

	commits, err := vcs.ListCommits(repo.dir, boundary.String())
	assert.NoError(t, err)
	assert.Len(t, commits, 1)

	assert.Equal(t, "Trigger CI pipeline", commits[0].Title)
	assert.Empty(t, commits[0].ChangedFiles)
}

func TestListCommitsEmptyRange(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	boundary := repo.commit("initial", "file0.txt")

	commits, err := vcs.ListCommits(repo.dir, boundary.String())
	assert.NoError(t, err)
	assert.Empty(t, commits)
}

func TestListCommitsKeepsSideBranchOlderThanBoundary(t *testing.T) {
	t.Parallel()

	// branch cut before the boundary, merged after it: the side commit's
	// committer time predates the boundary, but rev-list B..HEAD includes it
	repo := newTestRepo(t)
	base := repo.commit("initial", "file0.txt")
	side := repo.commit("feat: on side branch [minor]", "src/side.py")
	boundary := repo.commitWith("release point", []plumbing.Hash{base}, "rel.txt")
	repo.commitWith("merge side", []plumbing.Hash{boundary, side})

	commits, err := vcs.ListCommits(repo.dir, boundary.String())
	assert.NoError(t, err)
	assert.Len(t, commits, 2)

	assert.Equal(t, "merge side", commits[0].Title)
	assert.Equal(t, "feat: on side branch [minor]", commits[1].Title)
}

func TestListCommitsRangeStartNotAnAncestorOfHead(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	base := repo.commit("initial", "file0.txt")
	unmerged := repo.commit("feat: unmerged", "src/u.py")
	repo.commitWith("on master", []plumbing.Hash{base}, "src/m.py")

	_, err := vcs.ListCommits(repo.dir, unmerged.String())
	assert.Error(t, err)
}

func TestListCommitsUnknownRangeStart(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	repo.commit("initial", "file0.txt")

	_, err := vcs.ListCommits(repo.dir, "0000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestListCommitsNotARepository(t *testing.T) {
	t.Parallel()

	_, err := vcs.ListCommits(t.TempDir(), "HEAD~1")
	assert.Error(t, err)
}

type testRepo struct {
	t    *testing.T
	dir  string
	repo *git.Repository
	when time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	assert.NoError(t, err)

	return &testRepo{
		t:    t,
		dir:  dir,
		repo: repo,
		when: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) commit(message string, files ...string) plumbing.Hash {
	return r.commitWith(message, nil, files...)
}

func (r *testRepo) emptyCommit(message string) plumbing.Hash {
	return r.commitWith(message, nil)
}

// commitWith creates a commit with explicit parents, which allows building
// forks and merges without branch checkouts. nil parents means the current
// HEAD, as usual.
func (r *testRepo) commitWith(message string, parents []plumbing.Hash, files ...string) plumbing.Hash {
	w, err := r.repo.Worktree()
	assert.NoError(r.t, err)

	for _, file := range files {
		path := filepath.Join(r.dir, filepath.FromSlash(file))

		err = os.MkdirAll(filepath.Dir(path), 0o755)
		assert.NoError(r.t, err)

		err = os.WriteFile(path, []byte(message+"\n"), 0o644)
		assert.NoError(r.t, err)

		_, err = w.Add(file)
		assert.NoError(r.t, err)
	}

	r.when = r.when.Add(time.Minute)

	sig := &object.Signature{
		Name:  "test",
		Email: "test@example.com",
		When:  r.when,
	}

	hash, err := w.Commit(message, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		Parents:           parents,
		AllowEmptyCommits: len(files) == 0,
	})
	assert.NoError(r.t, err)

	return hash
}
