// Package loader reads GraphQL schema and operation files from disk.
//
// Files may reference other files with `#import "path"` comments. Documents matched by
// multiple patterns or imported multiple times are loaded once.
package loader

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"

	"github.com/wundergraph/rtkquery-codegen/pkg/operationreport"
	"github.com/wundergraph/rtkquery-codegen/pkg/printer"
)

// ErrNoDocuments is returned when none of the patterns matches a file.
var ErrNoDocuments = errors.New("loader: no files matched")

const defaultConcurrency = 8

type Option func(l *Loader)

func WithLogger(log abstractlogger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithConcurrency limits the number of files scanned at the same time.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

type Loader struct {
	log         abstractlogger.Logger
	concurrency int
}

func New(opts ...Option) *Loader {
	l := &Loader{
		log:         abstractlogger.NoopLogger,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadDocuments parses all files matching patterns into one document.
// Operations keep the order of their files. Fragments are merged by name, the first definition wins
// and differing redefinitions are logged as warnings.
// Parse errors are returned as an operationreport.Report.
func (l *Loader) LoadDocuments(ctx context.Context, patterns []string) (*ast.QueryDocument, error) {
	sources, err := l.scan(ctx, patterns)
	if err != nil {
		return nil, err
	}

	document := &ast.QueryDocument{}
	fragments := map[string]uint64{}
	report := operationreport.Report{}

	for _, source := range sources {
		doc, err := parser.ParseQuery(source)
		if err != nil {
			report.AddError(err)
			continue
		}

		document.Operations = append(document.Operations, doc.Operations...)
		for _, fragment := range doc.Fragments {
			digest := xxhash.Sum64String(printer.PrintFragment(fragment))
			if first, exists := fragments[fragment.Name]; exists {
				if first != digest {
					l.log.Warn("loader.Loader.LoadDocuments: conflicting fragment definition, keeping the first one",
						abstractlogger.String("fragment", fragment.Name),
						abstractlogger.String("file", source.Name),
					)
					continue
				}
				l.log.Debug("loader.Loader.LoadDocuments: skipping duplicate fragment",
					abstractlogger.String("fragment", fragment.Name),
					abstractlogger.String("file", source.Name),
				)
				continue
			}
			fragments[fragment.Name] = digest
			document.Fragments = append(document.Fragments, fragment)
		}

		l.log.Debug("loader.Loader.LoadDocuments",
			abstractlogger.String("file", source.Name),
			abstractlogger.Int("operations", len(doc.Operations)),
			abstractlogger.Int("fragments", len(doc.Fragments)),
		)
	}

	if report.HasErrors() {
		return nil, report
	}
	return document, nil
}

// LoadSchema loads all SDL files matching patterns into one schema.
func (l *Loader) LoadSchema(ctx context.Context, patterns []string) (*ast.Schema, error) {
	sources, err := l.scan(ctx, patterns)
	if err != nil {
		return nil, err
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		report := operationreport.Report{}
		report.AddError(err)
		return nil, report
	}

	l.log.Debug("loader.Loader.LoadSchema",
		abstractlogger.Int("files", len(sources)),
		abstractlogger.Int("types", len(schema.Types)),
	)
	return schema, nil
}

func (l *Loader) scan(ctx context.Context, patterns []string) ([]*ast.Source, error) {
	files, err := Expand(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoDocuments, "patterns %v", patterns)
	}

	scanned := make([]*GraphQLFile, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scanner := Scanner{}
			file, err := scanner.ScanFile(files[i])
			if err != nil {
				return err
			}
			scanned[i] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	root := GraphQLFile{}
	for _, file := range scanned {
		root.Imports = append(root.Imports, *file)
	}
	return root.Sources(), nil
}

// Expand resolves glob patterns into a list of files. `**` matches any number of directories.
// Matches of one pattern are sorted, a file matched by multiple patterns is listed once.
func Expand(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "matching %s", pattern)
		}
		sort.Strings(matches)
		for _, match := range matches {
			match = filepath.Clean(match)
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}
	return files, nil
}
