// Package validator checks a project tree against its expected layout.
package validator

import (
	"path/filepath"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Validator implements ports.StructureValidator.
type Validator struct {
	fs ports.FileSystem
}

// New creates a Validator reading through fsys.
func New(fsys ports.FileSystem) *Validator {
	return &Validator{fs: fsys}
}

// Validate checks directories, then packages, then modules, and stops at the first
// invalid entry.
func (v *Validator) Validate(root string, layout domain.Layout) (*domain.StructureReport, error) {
	report := &domain.StructureReport{}

	for _, dir := range layout.Dirs {
		ok := v.isDir(filepath.Join(root, dir))
		report.Add(domain.EntryDirectory, dir, ok)
		if !ok {
			return report, invalid(domain.ErrInvalidDirectory, "directory", dir)
		}
	}

	for _, pkg := range layout.Packages {
		path := filepath.Join(root, pkg)
		ok := v.isDir(path)
		if ok && layout.PackageMarker != "" {
			ok = v.isFile(filepath.Join(path, layout.PackageMarker))
		}
		report.Add(domain.EntryPackage, pkg, ok)
		if !ok {
			return report, invalid(domain.ErrInvalidPackage, "package", pkg)
		}
	}

	for _, module := range layout.Modules {
		ok, err := v.checkModule(root, module)
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, "invalid module pattern"), "module", module)
		}
		report.Add(domain.EntryModule, module, ok)
		if !ok {
			return report, invalid(domain.ErrInvalidModule, "module", module)
		}
	}

	return report, nil
}

func (v *Validator) checkModule(root, module string) (bool, error) {
	if !isPattern(module) {
		return v.isFile(filepath.Join(root, module)), nil
	}

	matches, err := v.fs.Glob(root, module)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (v *Validator) isDir(path string) bool {
	info, err := v.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (v *Validator) isFile(path string) bool {
	info, err := v.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isPattern(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

func invalid(sentinel error, kind, path string) error {
	return zerr.With(zerr.Wrap(sentinel, kind+": "+path+" is invalid"), kind, path)
}
