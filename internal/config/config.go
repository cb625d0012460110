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

// Paths contains file and directory configuration.
type Paths struct {
	StopwordsFile string `toml:"stopwords_file"`
	LogDir        string `toml:"log_dir"`
}

// Ingestion contains the character decoding fallback chain.
type Ingestion struct {
	Encodings []string `toml:"encodings"`
}

// Tokenizer contains segmentation settings.
type Tokenizer struct {
	// HMM enables hidden-Markov segmentation of runs absent from the dictionary.
	HMM bool `toml:"hmm"`
	// UserDict is an optional extra dictionary file merged into the embedded one.
	UserDict string `toml:"user_dict"`
}

// Vectorizer contains weight-vector construction settings.
type Vectorizer struct {
	MaxFeatures int `toml:"max_features"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format    string `toml:"format"`
	Level     string `toml:"level"`
	LogToFile bool   `toml:"log_to_file"`
}

// Config encapsulates all configuration values for docsim.
//
// Configuration sections by subsystem:
//   - Paths: stopword list location and log directory
//   - Ingestion: encoding fallback chain for document reads
//   - Tokenizer: dictionary segmentation behavior
//   - Vectorizer: vocabulary bound
//   - Logging: log format, level, and file output
type Config struct {
	Paths      Paths      `toml:"paths"`
	Ingestion  Ingestion  `toml:"ingestion"`
	Tokenizer  Tokenizer  `toml:"tokenizer"`
	Vectorizer Vectorizer `toml:"vectorizer"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/docsim/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was actually read; a missing file is not an error and
// yields defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
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

// ResolvePath reports where configuration would be loaded from without
// parsing the file. The boolean reports whether that file exists.
func ResolvePath(path string) (string, bool, error) {
	return resolveConfigPath(path)
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

	defaultPath, err := expandPath("~/.config/docsim/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("docsim.toml")
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

// EnsureDirectories creates the directories the tool writes into: the log
// directory and the stopword file's parent (so config init can seed it).
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.StopwordsFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
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
