package metadata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"

	"specindex/internal/catalog"
	"specindex/internal/config"
	"specindex/internal/htmltitle"
	"specindex/internal/logging"
)

// ErrNotSpec reports a folder without any recognized spec marker.
var ErrNotSpec = errors.New("not a spec folder")

var leveledFolderPattern = regexp.MustCompile(`^([a-z0-9-]+)-([0-9]+)$`)

// Options controls spec discovery and shortname normalization.
type Options struct {
	StructuredMarker string
	HTMLMarker       string
	HTMLMarkers      map[string]string
	Exclude          []string
	Renames          map[string]string
	SnapshotRoot     string
	SnapshotFamily   string
	SnapshotTitle    string
}

// OptionsFromConfig extracts resolver options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		StructuredMarker: cfg.Index.StructuredMarker,
		HTMLMarker:       cfg.Index.HTMLMarker,
		HTMLMarkers:      cfg.Index.HTMLMarkers,
		Exclude:          cfg.Index.Exclude,
		Renames:          cfg.Shortnames.Renames,
		SnapshotRoot:     cfg.Shortnames.SnapshotRoot,
		SnapshotFamily:   cfg.Shortnames.SnapshotFamily,
		SnapshotTitle:    cfg.Shortnames.SnapshotTitle,
	}
}

// Resolver turns spec folders into catalog records.
type Resolver struct {
	opts            Options
	reader          Reader
	logger          *slog.Logger
	snapshotPattern *regexp.Regexp
}

// NewResolver builds a Resolver. A nil reader defaults to BlockReader.
func NewResolver(opts Options, reader Reader, logger *slog.Logger) *Resolver {
	if reader == nil {
		reader = BlockReader{}
	}
	r := &Resolver{
		opts:   opts,
		reader: reader,
		logger: logging.NewComponentLogger(logger, "metadata"),
	}
	if opts.SnapshotRoot != "" {
		r.snapshotPattern = regexp.MustCompile("^" + regexp.QuoteMeta(opts.SnapshotRoot) + "-(20[0-9]{2})$")
	}
	return r
}

// Scan resolves every spec folder directly under root in name order. Files,
// symlinks, excluded folders, and folders without a marker are skipped.
func (r *Resolver) Scan(ctx context.Context, root string) ([]catalog.Record, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read spec root: %w", err)
	}

	records := make([]catalog.Record, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if r.excluded(name) {
			r.logger.Debug("folder excluded", logging.String(logging.FieldDir, name))
			skipped++
			continue
		}
		rec, err := r.Resolve(ctx, root, name)
		if errors.Is(err, ErrNotSpec) {
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	r.logger.Info("scanned spec root",
		logging.String("root", root),
		logging.Int("spec_count", len(records)),
		logging.Int("skipped_count", skipped))
	return records, nil
}

// Resolve builds the record for root/dir. It returns ErrNotSpec when the
// folder holds neither marker file.
func (r *Resolver) Resolve(ctx context.Context, root, dir string) (catalog.Record, error) {
	folder := filepath.Join(root, dir)

	structured := filepath.Join(folder, r.opts.StructuredMarker)
	if info, err := statFile(structured); err != nil {
		return catalog.Record{}, err
	} else if info != nil {
		rec, err := r.resolveStructured(ctx, dir, structured)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("resolve %s: %w", dir, err)
		}
		rec.Modified = info.ModTime().UTC()
		r.logResolved(rec)
		return rec, nil
	}

	htmlPath := filepath.Join(folder, r.htmlMarker(dir))
	if info, err := statFile(htmlPath); err != nil {
		return catalog.Record{}, err
	} else if info != nil {
		rec, err := r.resolveHTML(dir, htmlPath)
		if err != nil {
			return catalog.Record{}, fmt.Errorf("resolve %s: %w", dir, err)
		}
		rec.Modified = info.ModTime().UTC()
		r.logResolved(rec)
		return rec, nil
	}

	return catalog.Record{}, ErrNotSpec
}

func (r *Resolver) resolveStructured(ctx context.Context, dir, path string) (catalog.Record, error) {
	fields, err := r.reader.Read(ctx, path)
	if err != nil {
		return catalog.Record{}, err
	}
	shortname, level := r.NormalizeShortname(fields.Shortname, fields.Level)
	return catalog.Record{
		Dir:        dir,
		Shortname:  shortname,
		Level:      level,
		Title:      fields.Title,
		HasTitle:   fields.HasTitle,
		WorkStatus: fields.WorkStatus,
		Source:     catalog.SourceStructured,
	}, nil
}

// NormalizeShortname applies the rename table and the year-snapshot rule to a
// shortname read from structured metadata.
func (r *Resolver) NormalizeShortname(shortname string, level int) (string, int) {
	if renamed, ok := r.opts.Renames[shortname]; ok {
		return renamed, level
	}
	if r.snapshotPattern != nil {
		if m := r.snapshotPattern.FindStringSubmatch(shortname); m != nil {
			year, _ := strconv.Atoi(m[1])
			return r.opts.SnapshotFamily, year
		}
	}
	return shortname, level
}

func (r *Resolver) resolveHTML(dir, path string) (catalog.Record, error) {
	rec := catalog.Record{
		Dir:        dir,
		Shortname:  dir,
		WorkStatus: catalog.StatusCompleted,
		Source:     catalog.SourceHTML,
	}

	if m := leveledFolderPattern.FindStringSubmatch(dir); m != nil {
		level, err := strconv.Atoi(m[2])
		if err != nil {
			// Out of int range; the folder keeps its full name and no level.
			r.logger.Debug("folder level out of range",
				logging.String(logging.FieldDir, dir),
				logging.Error(err))
			return r.titleFromHTML(rec, path)
		}
		rec.Level = level
		if r.opts.SnapshotRoot != "" && m[1] == r.opts.SnapshotRoot {
			rec.Shortname = r.opts.SnapshotFamily
			rec.Title = r.opts.SnapshotTitle + " " + m[2]
			rec.HasTitle = true
			return rec, nil
		}
		rec.Shortname = m[1]
	}
	return r.titleFromHTML(rec, path)
}

func (r *Resolver) titleFromHTML(rec catalog.Record, path string) (catalog.Record, error) {
	res, err := htmltitle.Extract(path)
	if err != nil {
		return catalog.Record{}, err
	}
	if !res.Found {
		logging.WarnWithContext(r.logger, "spec has no title", "title_missing",
			logging.String(logging.FieldDir, rec.Dir),
			logging.String(logging.FieldErrorHint, "add a <title> element to the document"),
			logging.String(logging.FieldImpact, "index lists the folder name instead"))
	}
	rec.Title, rec.HasTitle = res.Title, res.Found
	return rec, nil
}

func (r *Resolver) htmlMarker(dir string) string {
	if name, ok := r.opts.HTMLMarkers[dir]; ok && name != "" {
		return name
	}
	return r.opts.HTMLMarker
}

func (r *Resolver) excluded(name string) bool {
	for _, pattern := range r.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (r *Resolver) logResolved(rec catalog.Record) {
	r.logger.Debug("resolved spec",
		logging.String(logging.FieldDir, rec.Dir),
		logging.String(logging.FieldShortname, rec.Shortname),
		logging.Int("level", rec.Level),
		logging.String("work_status", rec.WorkStatus),
		logging.String("source", string(rec.Source)))
}

// statFile returns nil info when path does not exist as a regular file.
func statFile(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, nil
	}
	return info, nil
}
