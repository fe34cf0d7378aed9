package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceDir == "" {
		return errors.New("paths.source_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("at least one [[categories]] entry is required")
	}
	names := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("categories[%d].name must be set", i)
		}
		if _, dup := names[cat.Name]; dup {
			return fmt.Errorf("duplicate category name %q", cat.Name)
		}
		names[cat.Name] = struct{}{}
		if cat.Destination == "" {
			return fmt.Errorf("categories[%d] (%s): destination must be set", i, cat.Name)
		}
		if len(cat.Extensions) == 0 {
			return fmt.Errorf("categories[%d] (%s): extensions must not be empty", i, cat.Name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
