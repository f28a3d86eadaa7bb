package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/wipac-dev/nextversion/lib/consoles"
	"github.com/wipac-dev/nextversion/lib/runner"
)

var cli struct {
	Tag         string   `required:"" env:"LATEST_VERSION_TAG" help:"Latest released version tag, ex: v1.2.3."`
	FirstCommit string   `required:"" env:"FIRST_COMMIT" help:"Range start (exclusive): commits after this one up to HEAD are inspected."`
	Style       string   `default:"X.Y.Z" env:"VERSION_STYLE" help:"Versioning style: X.Y.Z or X.Y."`
	Repo        string   `default:"." env:"REPO_PATH" type:"existingdir" help:"Path to the git repository."`
	IgnorePaths []string `env:"IGNORE_PATHS" help:"Glob patterns for files that never justify a bump on their own."`
	ForcePatch  bool     `env:"FORCE_PATCH_IF_NO_COMMIT_TOKEN" help:"Default untagged commits with substantive changes to a patch bump."`
	Quiet       bool     `short:"q" help:"Suppress diagnostics on stderr."`
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	console := consoles.NewWriterConsole(os.Stderr)
	if cli.Quiet {
		console = consoles.NewNopConsole()
	}

	r := runner.New(console, os.Stdout)

	err := r.Run(&runner.Options{
		Tag:         cli.Tag,
		FirstCommit: cli.FirstCommit,
		Style:       cli.Style,
		RepoPath:    cli.Repo,
		IgnorePaths: cli.IgnorePaths,
		ForcePatch:  cli.ForcePatch,
	})
	ctx.FatalIfErrorf(err)
}
