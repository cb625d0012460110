package config

import (
	"errors"
	"fmt"
)

var supportedEncodings = map[string]struct{}{
	"utf-8":   {},
	"utf8":    {},
	"gbk":     {},
	"gb18030": {},
	"big5":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIngestion(); err != nil {
		return err
	}
	if err := c.validateVectorizer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIngestion() error {
	if len(c.Ingestion.Encodings) == 0 {
		return errors.New("ingestion.encodings must list at least one encoding")
	}
	for _, name := range c.Ingestion.Encodings {
		if _, ok := supportedEncodings[name]; !ok {
			return fmt.Errorf("ingestion.encodings: unsupported encoding %q (supported: utf-8, gbk, gb18030, big5)", name)
		}
	}
	return nil
}

func (c *Config) validateVectorizer() error {
	if c.Vectorizer.MaxFeatures <= 0 {
		return errors.New("vectorizer.max_features must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
