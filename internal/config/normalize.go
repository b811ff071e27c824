package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIndex()
	c.normalizeShortnames()
	c.normalizeCurrentWork()
	c.normalizeAliases()
	c.normalizeMetadata()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Root) == "" || c.Paths.Root == defaultRoot {
		if value, ok := os.LookupEnv("SPECINDEX_ROOT"); ok && strings.TrimSpace(value) != "" {
			c.Paths.Root = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Paths.Root) == "" {
		c.Paths.Root = defaultRoot
	}
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = c.Paths.Root
	}
	if c.Paths.Output, err = expandPath(c.Paths.Output); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.TimestampsFile, err = expandPath(strings.TrimSpace(c.Paths.TimestampsFile)); err != nil {
		return fmt.Errorf("paths.timestamps_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.RedirectOutput) == "" {
		c.Paths.RedirectOutput = defaultRedirectOutput
	}
	if c.Paths.RedirectOutput, err = expandPath(c.Paths.RedirectOutput); err != nil {
		return fmt.Errorf("paths.redirect_output: %w", err)
	}
	return nil
}

func (c *Config) normalizeIndex() {
	c.Index.Title = strings.TrimSpace(c.Index.Title)
	if c.Index.Title == "" {
		c.Index.Title = defaultIndexTitle
	}
	c.Index.StructuredMarker = strings.TrimSpace(c.Index.StructuredMarker)
	if c.Index.StructuredMarker == "" {
		c.Index.StructuredMarker = defaultStructuredMarker
	}
	c.Index.HTMLMarker = strings.TrimSpace(c.Index.HTMLMarker)
	if c.Index.HTMLMarker == "" {
		c.Index.HTMLMarker = defaultHTMLMarker
	}
	if c.Index.HTMLMarkers == nil {
		c.Index.HTMLMarkers = map[string]string{}
	}
	patterns := make([]string, 0, len(c.Index.Exclude))
	for _, pattern := range c.Index.Exclude {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	c.Index.Exclude = patterns
}

func (c *Config) normalizeShortnames() {
	renames := make(map[string]string, len(c.Shortnames.Renames))
	for from, to := range c.Shortnames.Renames {
		from = strings.ToLower(strings.TrimSpace(from))
		to = strings.ToLower(strings.TrimSpace(to))
		if from == "" || to == "" {
			continue
		}
		renames[from] = to
	}
	c.Shortnames.Renames = renames
	c.Shortnames.SnapshotRoot = strings.ToLower(strings.TrimSpace(c.Shortnames.SnapshotRoot))
	c.Shortnames.SnapshotFamily = strings.ToLower(strings.TrimSpace(c.Shortnames.SnapshotFamily))
	if c.Shortnames.SnapshotFamily == "" {
		c.Shortnames.SnapshotFamily = defaultSnapshotFamily
	}
	c.Shortnames.SnapshotTitle = strings.TrimSpace(c.Shortnames.SnapshotTitle)
	if c.Shortnames.SnapshotTitle == "" {
		c.Shortnames.SnapshotTitle = defaultSnapshotTitle
	}
}

func (c *Config) normalizeCurrentWork() {
	levels := make(map[string]int, len(c.CurrentWork.Levels))
	for shortname, level := range c.CurrentWork.Levels {
		if key := strings.ToLower(strings.TrimSpace(shortname)); key != "" {
			levels[key] = level
		}
	}
	c.CurrentWork.Levels = levels

	last := make([]string, 0, len(c.CurrentWork.AlwaysLast))
	seen := make(map[string]struct{}, len(c.CurrentWork.AlwaysLast))
	for _, shortname := range c.CurrentWork.AlwaysLast {
		key := strings.ToLower(strings.TrimSpace(shortname))
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		last = append(last, key)
		// always_last wins over a pinned level for the same shortname.
		delete(c.CurrentWork.Levels, key)
	}
	c.CurrentWork.AlwaysLast = last
}

func (c *Config) normalizeAliases() {
	c.Aliases.Strategy = strings.ToLower(strings.TrimSpace(c.Aliases.Strategy))
	if c.Aliases.Strategy == "" {
		c.Aliases.Strategy = defaultAliasStrategy
	}
	c.Aliases.RedirectBase = strings.TrimRight(strings.TrimSpace(c.Aliases.RedirectBase), "/")
	if c.Aliases.RedirectBase == "" {
		c.Aliases.RedirectBase = defaultRedirectBase
	}
}

func (c *Config) normalizeMetadata() {
	c.Metadata.Reader = strings.ToLower(strings.TrimSpace(c.Metadata.Reader))
	if c.Metadata.Reader == "" {
		c.Metadata.Reader = defaultMetadataReader
	}
	c.Metadata.Command = strings.TrimSpace(c.Metadata.Command)
	if len(c.Metadata.Args) == 0 {
		c.Metadata.Args = []string{"{path}"}
	}
	if c.Metadata.TimeoutSeconds <= 0 {
		c.Metadata.TimeoutSeconds = defaultMetadataTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
