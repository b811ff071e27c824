package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIndex(); err != nil {
		return err
	}
	if err := c.validateCurrentWork(); err != nil {
		return err
	}
	if err := c.validateAliases(); err != nil {
		return err
	}
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIndex() error {
	if strings.ContainsAny(c.Index.StructuredMarker, `/\`) {
		return errors.New("index.structured_marker must be a file name, not a path")
	}
	if strings.ContainsAny(c.Index.HTMLMarker, `/\`) {
		return errors.New("index.html_marker must be a file name, not a path")
	}
	for _, pattern := range c.Index.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("index.exclude: invalid pattern %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateCurrentWork() error {
	for shortname, level := range c.CurrentWork.Levels {
		if level < 0 {
			return fmt.Errorf("current_work.levels.%s must not be negative", shortname)
		}
	}
	return nil
}

func (c *Config) validateAliases() error {
	switch c.Aliases.Strategy {
	case AliasStrategyRedirect, AliasStrategySymlink:
		return nil
	default:
		return fmt.Errorf("aliases.strategy: unsupported value %q (use %q or %q)", c.Aliases.Strategy, AliasStrategyRedirect, AliasStrategySymlink)
	}
}

func (c *Config) validateMetadata() error {
	switch c.Metadata.Reader {
	case MetadataReaderNative:
		return nil
	case MetadataReaderCommand:
		if c.Metadata.Command == "" {
			return errors.New("metadata.command must be set when metadata.reader is \"command\"")
		}
		return nil
	default:
		return fmt.Errorf("metadata.reader: unsupported value %q", c.Metadata.Reader)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
