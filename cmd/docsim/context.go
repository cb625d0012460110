package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"docsim/internal/config"
	"docsim/internal/logging"
	"docsim/internal/pipeline"
	"docsim/internal/report"
	"docsim/internal/textio"
	"docsim/internal/tokenizer"
)

type commandContext struct {
	configFlag  *string
	jsonFlag    *bool
	noColorFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	segmenterOnce sync.Once
	segmenter     tokenizer.Segmenter
	segmenterErr  error
}

func newCommandContext(configFlag *string, jsonFlag, noColorFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		jsonFlag:    jsonFlag,
		noColorFlag: noColorFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, resolvedPath, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureSegmenter constructs the dictionary segmenter once per process.
// Loading the embedded dictionary is the expensive step, so every command
// shares the same instance.
func (c *commandContext) ensureSegmenter() (tokenizer.Segmenter, error) {
	c.segmenterOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.segmenterErr = err
			return
		}
		c.segmenter, c.segmenterErr = tokenizer.NewDictionarySegmenter(tokenizer.SegmenterOptions{
			HMM:      cfg.Tokenizer.HMM,
			UserDict: cfg.Tokenizer.UserDict,
		})
	})
	return c.segmenter, c.segmenterErr
}

func (c *commandContext) buildLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

// buildComparer wires the full comparison pipeline from the effective
// configuration.
func (c *commandContext) buildComparer() (*pipeline.Comparer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	seg, err := c.ensureSegmenter()
	if err != nil {
		return nil, err
	}
	logger, err := c.buildLogger()
	if err != nil {
		return nil, err
	}
	reader, err := textio.NewReader(cfg.Ingestion.Encodings)
	if err != nil {
		return nil, err
	}
	return pipeline.NewComparer(pipeline.Options{
		Reader:        reader,
		Writer:        report.NewWriter(),
		Tokenizer:     tokenizer.New(seg),
		StopwordsPath: cfg.Paths.StopwordsFile,
		MaxFeatures:   cfg.Vectorizer.MaxFeatures,
		Logger:        logger,
	})
}

func (c *commandContext) jsonWanted() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) colorDisabled() bool {
	return c.noColorFlag != nil && *c.noColorFlag
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// configSource reports where the effective configuration came from. Only
// meaningful after ensureConfig succeeded.
func (c *commandContext) configSource() (string, bool) {
	return c.configPath, c.configExists
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
