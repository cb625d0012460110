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
	c.normalizeIngestion()
	if err := c.normalizeTokenizer(); err != nil {
		return err
	}
	c.normalizeVectorizer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("DOCSIM_STOPWORDS"); ok && strings.TrimSpace(value) != "" {
		c.Paths.StopwordsFile = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.StopwordsFile) == "" {
		c.Paths.StopwordsFile = defaultStopwordsFile
	}
	var err error
	if c.Paths.StopwordsFile, err = expandPath(c.Paths.StopwordsFile); err != nil {
		return fmt.Errorf("paths.stopwords_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeIngestion() {
	cleaned := make([]string, 0, len(c.Ingestion.Encodings))
	for _, name := range c.Ingestion.Encodings {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) == 0 {
		cleaned = defaultEncodings()
	}
	c.Ingestion.Encodings = cleaned
}

func (c *Config) normalizeTokenizer() error {
	c.Tokenizer.UserDict = strings.TrimSpace(c.Tokenizer.UserDict)
	if c.Tokenizer.UserDict == "" {
		return nil
	}
	expanded, err := expandPath(c.Tokenizer.UserDict)
	if err != nil {
		return fmt.Errorf("tokenizer.user_dict: %w", err)
	}
	c.Tokenizer.UserDict = expanded
	return nil
}

func (c *Config) normalizeVectorizer() {
	if c.Vectorizer.MaxFeatures == 0 {
		c.Vectorizer.MaxFeatures = defaultMaxFeatures
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
