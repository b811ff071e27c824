package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output locations.
type Paths struct {
	Root           string `toml:"root"`
	Output         string `toml:"output"`
	TimestampsFile string `toml:"timestamps_file"`
	RedirectOutput string `toml:"redirect_output"`
}

// Index contains settings for spec discovery and the rendered index page.
type Index struct {
	Title            string            `toml:"title"`
	StructuredMarker string            `toml:"structured_marker"`
	HTMLMarker       string            `toml:"html_marker"`
	HTMLMarkers      map[string]string `toml:"html_markers"`
	Exclude          []string          `toml:"exclude"`
}

// Shortnames contains the shortname alias table and snapshot family naming.
type Shortnames struct {
	Renames        map[string]string `toml:"renames"`
	SnapshotRoot   string            `toml:"snapshot_root"`
	SnapshotFamily string            `toml:"snapshot_family"`
	SnapshotTitle  string            `toml:"snapshot_title"`
}

// CurrentWork contains the per-shortname overrides for current-work selection.
type CurrentWork struct {
	// Levels pins a shortname to the spec with the given level.
	Levels map[string]int `toml:"levels"`
	// AlwaysLast lists shortnames whose highest-level spec is always current.
	AlwaysLast []string `toml:"always_last"`
}

// Aliases contains configuration for shortname aliases.
type Aliases struct {
	Strategy     string `toml:"strategy"`
	RedirectBase string `toml:"redirect_base"`
}

// Metadata contains configuration for reading structured spec sources.
type Metadata struct {
	Reader         string   `toml:"reader"`
	Command        string   `toml:"command"`
	Args           []string `toml:"args"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format      string `toml:"format"`
	Level       string `toml:"level"`
	File        string `toml:"file"`
	Development bool   `toml:"development"`
}

// Config encapsulates all configuration values for specindex.
//
// Configuration sections by concern:
//   - Paths: spec root, output directory, timestamps file, redirect output
//   - Index: marker files, exclusions, and page title
//   - Shortnames: rename table and snapshot family naming
//   - CurrentWork: selection overrides
//   - Aliases: symlink or redirect page strategy
//   - Metadata: native or command-based structured metadata reader
//   - Logging: log format, level, and optional log file
type Config struct {
	Paths       Paths       `toml:"paths"`
	Index       Index       `toml:"index"`
	Shortnames  Shortnames  `toml:"shortnames"`
	CurrentWork CurrentWork `toml:"current_work"`
	Aliases     Aliases     `toml:"aliases"`
	Metadata    Metadata    `toml:"metadata"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/specindex/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		if err := decodeOver(&cfg, data); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// decodeOver applies a TOML document on top of cfg. Tables and arrays named in
// the document replace the defaults wholesale; absent ones keep them.
func decodeOver(cfg *Config, data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}

	defaults := *cfg
	cfg.Index.HTMLMarkers = nil
	cfg.Index.Exclude = nil
	cfg.Shortnames.Renames = nil
	cfg.CurrentWork.Levels = nil
	cfg.CurrentWork.AlwaysLast = nil
	cfg.Metadata.Args = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}

	if !hasKey(doc, "index", "html_markers") {
		cfg.Index.HTMLMarkers = defaults.Index.HTMLMarkers
	}
	if !hasKey(doc, "index", "exclude") {
		cfg.Index.Exclude = defaults.Index.Exclude
	}
	if !hasKey(doc, "shortnames", "renames") {
		cfg.Shortnames.Renames = defaults.Shortnames.Renames
	}
	if !hasKey(doc, "current_work", "levels") {
		cfg.CurrentWork.Levels = defaults.CurrentWork.Levels
	}
	if !hasKey(doc, "current_work", "always_last") {
		cfg.CurrentWork.AlwaysLast = defaults.CurrentWork.AlwaysLast
	}
	if !hasKey(doc, "metadata", "args") {
		cfg.Metadata.Args = defaults.Metadata.Args
	}
	return nil
}

func hasKey(doc map[string]any, table, key string) bool {
	section, ok := doc[table].(map[string]any)
	if !ok {
		return false
	}
	_, ok = section[key]
	return ok
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("specindex.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories checks the spec root and creates output directories.
func (c *Config) EnsureDirectories() error {
	info, err := os.Stat(c.Paths.Root)
	if err != nil {
		return fmt.Errorf("inspect spec root %q: %w", c.Paths.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("spec root %q is not a directory", c.Paths.Root)
	}
	if err := os.MkdirAll(c.Paths.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", c.Paths.Output, err)
	}
	if strings.TrimSpace(c.Paths.TimestampsFile) != "" {
		if err := os.MkdirAll(filepath.Dir(c.Paths.TimestampsFile), 0o755); err != nil {
			return fmt.Errorf("create timestamps directory: %w", err)
		}
	}
	return nil
}

// OverrideRoot replaces the spec root, for example from a command-line flag.
// An output directory that followed the old root follows the new one.
func (c *Config) OverrideRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return nil
	}
	expanded, err := expandPath(strings.TrimSpace(root))
	if err != nil {
		return fmt.Errorf("root override: %w", err)
	}
	if c.Paths.Output == c.Paths.Root {
		c.Paths.Output = expanded
	}
	c.Paths.Root = expanded
	return nil
}

// IndexPath returns the location of the generated index page.
func (c *Config) IndexPath() string {
	return filepath.Join(c.Paths.Output, "index.html")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
