// Package index generates a Markdown index of the subdirectories of a
// directory: one linked level-2 heading per subdirectory, in ascending
// byte order of the raw names. The output is meant to be pasted into a
// README whose entries are served under /examples/.
package index

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/dirmark/pkg/errors"
	"github.com/agentstation/dirmark/pkg/logging"
)

// linkPrefix is the fixed target prefix for every generated link.
const linkPrefix = "/examples/"

// Generator renders the directory index.
type Generator struct {
	dir    string
	writer io.Writer
}

// Option is a functional option for configuring the Generator
type Option func(*Generator)

// WithDir sets the directory whose entries are indexed
func WithDir(dir string) Option {
	return func(g *Generator) {
		g.dir = dir
	}
}

// WithWriter sets the destination for the rendered index
func WithWriter(w io.Writer) Option {
	return func(g *Generator) {
		g.writer = w
	}
}

// New creates a new index generator
func New(opts ...Option) *Generator {
	g := &Generator{
		dir:    ".",
		writer: os.Stdout,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate lists the subdirectories of the target directory and writes
// one Markdown block per subdirectory. A directory with no
// subdirectories produces no output and no error.
func (g *Generator) Generate(ctx context.Context) error {
	names, err := g.list()
	if err != nil {
		return err
	}

	logging.Debug().
		Str("dir", g.dir).
		Int("count", len(names)).
		Msg("Rendering directory index")

	for _, name := range names {
		if err := g.render(name); err != nil {
			return errors.WrapIO("write", g.dir, err)
		}
	}

	return nil
}

// list returns the names of the entries of the target directory that
// are themselves directories, sorted ascending by raw name. Whether a
// symlink counts as a directory is whatever os.DirEntry.IsDir reports.
func (g *Generator) list() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, errors.WrapIO("list", g.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	// os.ReadDir already sorts by filename, but the ordering is part of
	// the output contract, so pin it here rather than inherit it.
	sort.Strings(names)

	return names, nil
}

// render writes a single index block: a level-2 heading holding the
// link, then a blank line.
func (g *Generator) render(name string) error {
	_, err := fmt.Fprintf(g.writer, "## %s\n\n", md.Link(Title(name), linkPrefix+name))
	return err
}
