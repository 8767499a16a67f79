package loader

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// ErrImportCycle is returned when a file transitively imports itself.
var ErrImportCycle = errors.New("loader: file forms import cycle")

var (
	importStatementRegex = regexp.MustCompile(`(#import "[^";]+")`)
	pathStatementRegex   = regexp.MustCompile(`"(.*?)"`)
)

// Scanner reads GraphQL files and resolves their `#import "path"` comments.
// Import paths are glob patterns relative to the importing file.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	visiting map[string]struct{}
	scanned  map[string]*GraphQLFile
}

func (s *Scanner) reset() {
	s.visiting = map[string]struct{}{}
	s.scanned = map[string]*GraphQLFile{}
}

func (s *Scanner) ScanFile(inputFilePath string) (*GraphQLFile, error) {
	s.reset()
	return s.scanFile(inputFilePath)
}

func (s *Scanner) ScanPattern(pattern string) (*GraphQLFile, error) {
	s.reset()
	file := &GraphQLFile{}
	var err error
	file.Imports, err = s.fileImportsForPattern(pattern)
	return file, err
}

func (s *Scanner) scanFile(inputFilePath string) (*GraphQLFile, error) {
	filePath := filepath.Clean(inputFilePath)
	key, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	if _, exists := s.visiting[key]; exists {
		return nil, errors.Wrap(ErrImportCycle, filePath)
	}
	if file, exists := s.scanned[key]; exists {
		return file, nil
	}

	s.visiting[key] = struct{}{}
	defer delete(s.visiting, key)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}

	file := &GraphQLFile{
		Path:    filePath,
		Content: content,
	}

	fileDir := filepath.Dir(filePath)
	importStatements := importStatementRegex.FindAll(content, -1)
	for i := 0; i < len(importStatements); i++ {
		importFilePath := s.importFilePath(string(importStatements[i]))
		if importFilePath == "" {
			continue
		}
		imports, err := s.fileImportsForPattern(path.Join(filepath.ToSlash(fileDir), importFilePath))
		if err != nil {
			return nil, err
		}
		file.Imports = append(file.Imports, imports...)
	}

	s.scanned[key] = file
	return file, nil
}

func (s *Scanner) importFilePath(importStatement string) string {
	out := pathStatementRegex.FindString(importStatement)
	return strings.Trim(out, "\"")
}

func (s *Scanner) fileImportsForPattern(pattern string) ([]GraphQLFile, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "matching %s", pattern)
	}
	sort.Strings(matches)
	if len(matches) == 0 && !hasMeta(pattern) {
		return nil, errors.Wrapf(os.ErrNotExist, "importing %s", pattern)
	}

	out := make([]GraphQLFile, 0, len(matches))
	for _, match := range matches {
		importFile, err := s.scanFile(match)
		if err != nil {
			return nil, err
		}
		out = append(out, *importFile)
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}
