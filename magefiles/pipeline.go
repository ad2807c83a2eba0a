//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI with the given subcommand and arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Extract deduplicates the scraped recipes into unique ingredient and dish lists.
func Extract() error {
	mg.Deps(Build)
	return run("extract")
}

// Enrich builds the ingredient knowledge base via the language-model oracle.
func Enrich() error {
	mg.Deps(Build)
	return run("enrich")
}

// Link builds the dish knowledge base by resolving ingredient mentions.
func Link() error {
	mg.Deps(Build)
	return run("link")
}

// Split writes each knowledge-base record to its own JSON file.
func Split() error {
	mg.Deps(Build)
	return run("split")
}

// Index loads the knowledge bases into the SQLite index.
func Index() error {
	mg.Deps(Build)
	return run("kb", "store")
}

// Pipeline runs every stage in order: extract, enrich, link, split, index.
func Pipeline() error {
	mg.Deps(Build)
	for _, stage := range [][]string{
		{"extract"},
		{"enrich"},
		{"link"},
		{"split"},
		{"kb", "store"},
	} {
		if err := run(stage...); err != nil {
			return err
		}
	}
	return nil
}
