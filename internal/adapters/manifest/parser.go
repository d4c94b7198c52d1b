// Package manifest reads the dependency manifest of a project.
package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser implements ports.ManifestParser for "name:version" manifests.
//
// Everything after a '#' is a comment and blank lines are skipped. A line without a
// version, or with version -1, asks for the latest release.
type Parser struct {
	fs ports.FileSystem
}

// NewParser creates a Parser reading through fsys.
func NewParser(fsys ports.FileSystem) *Parser {
	return &Parser{fs: fsys}
}

// Parse reads the manifest at path.
func (p *Parser) Parse(path string) ([]domain.Dependency, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "missing "+path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var deps []domain.Dependency
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		dep, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", lineNo)
		}
		if ok {
			deps = append(deps, dep)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	return deps, nil
}

func parseLine(line string) (domain.Dependency, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Dependency{}, false, nil
	}

	name, version, found := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Dependency{}, false, zerr.Wrap(domain.ErrInvalidManifestLine, "dependency name is empty")
	}

	version = strings.TrimSpace(version)
	if !found || version == "" {
		version = domain.LatestVersion
	}
	return domain.Dependency{Name: name, Version: version}, true, nil
}
