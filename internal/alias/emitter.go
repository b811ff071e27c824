package alias

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"specindex/internal/config"
	"specindex/internal/fileutil"
)

// ErrTargetExists reports a redirect page that is already present.
var ErrTargetExists = errors.New("alias already exists")

// Outcome describes what an emitter did for one alias.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeExists  Outcome = "exists"
)

// Emitter materializes aliases below a root directory.
type Emitter interface {
	Emit(a Alias) (Outcome, error)
}

// NewEmitter returns the emitter for the configured strategy.
func NewEmitter(strategy, root string) (Emitter, error) {
	switch strategy {
	case config.AliasStrategyRedirect, "":
		return RedirectEmitter{Root: root}, nil
	case config.AliasStrategySymlink:
		return SymlinkEmitter{Root: root}, nil
	default:
		return nil, fmt.Errorf("unsupported alias strategy %q", strategy)
	}
}

// SymlinkEmitter links root/<name> to the sibling folder <target>. An existing
// path is left untouched.
type SymlinkEmitter struct {
	Root string
}

// Emit implements Emitter.
func (e SymlinkEmitter) Emit(a Alias) (Outcome, error) {
	link := filepath.Join(e.Root, a.Name)
	if err := os.Symlink(a.Target, link); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return OutcomeExists, nil
		}
		return "", fmt.Errorf("symlink %s -> %s: %w", a.Name, a.Target, err)
	}
	return OutcomeCreated, nil
}

// RedirectEmitter writes root/<name>/index.html redirecting to ../<target>/.
// The folder may already exist; the index.html must not.
type RedirectEmitter struct {
	Root string
}

// Emit implements Emitter.
func (e RedirectEmitter) Emit(a Alias) (Outcome, error) {
	folder := filepath.Join(e.Root, a.Name)
	if err := os.Mkdir(folder, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("create alias folder %s: %w", a.Name, err)
	}
	href := "../" + a.Target + "/"
	index := filepath.Join(folder, "index.html")
	if err := fileutil.WriteExclusive(index, RedirectPage(href, a.Target), 0o644); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrTargetExists, index)
		}
		return "", fmt.Errorf("write redirect %s: %w", a.Name, err)
	}
	return OutcomeCreated, nil
}
