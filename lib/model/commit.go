package model

import (
	"strings"
)

// Commit is the slice of VCS data the bump decision needs: one commit's
// title and the files it touched (per commit, not cumulative).
type Commit struct {
	Hash         string
	Title        string
	ChangedFiles []string
}

func NewCommit(hash string, title string, changedFiles []string) Commit {
	return Commit{
		Hash:         hash,
		Title:        title,
		ChangedFiles: changedFiles,
	}
}

// TitleLower is the view used for token matching. Title is preserved
// as-is for logs.
func (c Commit) TitleLower() string {
	return strings.ToLower(c.Title)
}
