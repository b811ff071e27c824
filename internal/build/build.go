package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"specindex/internal/alias"
	"specindex/internal/catalog"
	"specindex/internal/config"
	"specindex/internal/fileutil"
	"specindex/internal/logging"
	"specindex/internal/metadata"
	"specindex/internal/render"
	"specindex/internal/timestamps"
)

// ErrIndexExists reports an index page left by an earlier build.
var ErrIndexExists = errors.New("index already exists")

// ErrLocked reports another build holding the root lock.
var ErrLocked = errors.New("another build of this root is running")

// Options tunes a single build.
type Options struct {
	// Force replaces an existing index page instead of failing.
	Force bool
	// Reader overrides the structured metadata reader chosen by the config.
	Reader metadata.Reader
}

// Summary describes the outcome of a build.
type Summary struct {
	RunID           string        `json:"run_id"`
	Specs           int           `json:"specs"`
	Groups          int           `json:"groups"`
	Aliases         []alias.Alias `json:"aliases"`
	AliasesCreated  int           `json:"aliases_created"`
	AliasesExisting int           `json:"aliases_existing"`
	IndexPath       string        `json:"index_path"`
	TimestampsPath  string        `json:"timestamps_path,omitempty"`
	Timestamps      int           `json:"timestamps"`
	Duration        time.Duration `json:"duration"`
}

// Discover scans the spec root and returns the catalog with current work
// selected. It writes nothing.
func Discover(ctx context.Context, cfg *config.Config, reader metadata.Reader, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg == nil {
		return nil, errors.New("build requires a config")
	}
	if reader == nil {
		var err error
		reader, err = metadata.NewReader(cfg)
		if err != nil {
			return nil, err
		}
	}
	resolver := metadata.NewResolver(metadata.OptionsFromConfig(cfg), reader, logger)
	records, err := resolver.Scan(ctx, cfg.Paths.Root)
	if err != nil {
		return nil, err
	}
	c := catalog.Group(records)
	c.SelectCurrentWork(catalog.NewExceptions(cfg.CurrentWork.Levels, cfg.CurrentWork.AlwaysLast))
	return c, nil
}

// Run performs a full build.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (Summary, error) {
	started := time.Now()
	if cfg == nil {
		return Summary{}, errors.New("build requires a config")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return Summary{}, err
	}

	lock, err := acquireLock(cfg.Paths.Root)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release build lock", logging.Error(err))
		}
	}()

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logger)
	log := logging.NewComponentLogger(logger, "build")
	log.Info("build started",
		logging.String("root", cfg.Paths.Root),
		logging.String("output", cfg.Paths.Output),
		logging.String("alias_strategy", cfg.Aliases.Strategy),
		logging.Any("exclude", cfg.Index.Exclude),
		logging.Bool("force", opts.Force))

	summary := Summary{RunID: runID, IndexPath: cfg.IndexPath()}

	c, err := Discover(ctx, cfg, opts.Reader, logger)
	if err != nil {
		return summary, err
	}
	summary.Specs = c.Records()
	summary.Groups = c.Len()

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	summary.Aliases = alias.Plan(c, cfg.Shortnames.SnapshotFamily, cfg.Shortnames.SnapshotRoot)
	emitter, err := alias.NewEmitter(cfg.Aliases.Strategy, cfg.Paths.Output)
	if err != nil {
		return summary, err
	}
	for _, a := range summary.Aliases {
		outcome, err := emitter.Emit(a)
		if err != nil {
			return summary, err
		}
		switch outcome {
		case alias.OutcomeCreated:
			summary.AliasesCreated++
		case alias.OutcomeExists:
			summary.AliasesExisting++
			log.Debug("alias already present",
				logging.String(logging.FieldShortname, a.Name),
				logging.String("target", a.Target))
		}
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if err := writeIndex(summary.IndexPath, c, cfg.Index.Title, opts.Force); err != nil {
		return summary, err
	}

	if path := strings.TrimSpace(cfg.Paths.TimestampsFile); path != "" {
		n, err := timestamps.Write(path, c)
		if err != nil {
			return summary, err
		}
		summary.TimestampsPath = path
		summary.Timestamps = n
	}

	summary.Duration = time.Since(started)
	log.Info("build finished",
		logging.Int("spec_count", summary.Specs),
		logging.Int("group_count", summary.Groups),
		logging.Int("aliases_created", summary.AliasesCreated),
		logging.Int("aliases_existing", summary.AliasesExisting),
		logging.String("index", summary.IndexPath),
		logging.Duration("duration", summary.Duration))
	return summary, nil
}

func writeIndex(path string, c *catalog.Catalog, title string, force bool) error {
	var buf bytes.Buffer
	if err := render.Index(&buf, c, render.IndexOptions{Title: title}); err != nil {
		return err
	}
	if force {
		if err := fileutil.WriteTruncate(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write index: %w", err)
		}
		return nil
	}
	if err := fileutil.WriteExclusive(path, buf.Bytes(), 0o644); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s (rerun with --force to replace it)", ErrIndexExists, path)
		}
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// LockPath returns the lock file guarding builds of root.
func LockPath(root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(os.TempDir(), "specindex-"+hex.EncodeToString(sum[:6])+".lock")
}

func acquireLock(root string) (*flock.Flock, error) {
	lock := flock.New(LockPath(root))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, root)
	}
	return lock, nil
}
