package loader

import (
	"bufio"
	"bytes"
	"io"

	"github.com/vektah/gqlparser/v2/ast"
)

var lineTerminator = []byte("\n")

// GraphQLFile is a scanned file together with the files it imports.
// The root returned by Scanner.ScanPattern has no path of its own.
type GraphQLFile struct {
	Path    string
	Content []byte `json:"-"`
	Imports []GraphQLFile
}

// Render writes the file and its imports without the import statements.
// A file imported multiple times is written once.
func (g GraphQLFile) Render(printFilePath bool, out io.Writer) error {
	return g.render(map[string]struct{}{}, printFilePath, out)
}

func (g GraphQLFile) render(rendered map[string]struct{}, printFilePath bool, out io.Writer) error {
	var err error
	if g.Path != "" {
		rendered[g.Path] = struct{}{}
		err = g.renderSelf(printFilePath, out)
		if err != nil {
			return err
		}
	}

	for _, importFile := range g.Imports {
		if _, ok := rendered[importFile.Path]; ok {
			continue
		}
		if printFilePath {
			_, err = out.Write(lineTerminator)
			if err != nil {
				return err
			}
		}
		err = importFile.render(rendered, printFilePath, out)
		if err != nil {
			return err
		}
	}

	return nil
}

func (g GraphQLFile) renderSelf(printFilePath bool, out io.Writer) error {
	if printFilePath {
		_, err := out.Write([]byte("#file: " + g.Path + "\n\n"))
		if err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(g.Content))
	for scanner.Scan() {
		line := scanner.Bytes()
		if importStatementRegex.Match(line) {
			continue
		}
		if _, err := out.Write(line); err != nil {
			return err
		}
		if _, err := out.Write(lineTerminator); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Sources flattens the file tree into parser sources, each file before its imports.
// Every path is contained once even if it is imported multiple times.
func (g GraphQLFile) Sources() []*ast.Source {
	seen := map[string]struct{}{}
	var out []*ast.Source
	g.collectSources(seen, &out)
	return out
}

func (g GraphQLFile) collectSources(seen map[string]struct{}, out *[]*ast.Source) {
	if g.Path != "" {
		if _, ok := seen[g.Path]; ok {
			return
		}
		seen[g.Path] = struct{}{}
		// import statements are comments, the content is parsed as is to keep error locations
		*out = append(*out, &ast.Source{Name: g.Path, Input: string(g.Content)})
	}
	for _, importFile := range g.Imports {
		importFile.collectSources(seen, out)
	}
}
