package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsim/internal/testsupport"
)

type cliTestEnv struct {
	baseDir       string
	configPath    string
	stopwordsPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("DOCSIM_STOPWORDS", "")
	t.Setenv("NO_COLOR", "1")

	stopwordsPath := filepath.Join(base, "stopwords.txt")
	testsupport.WriteStopwords(t, stopwordsPath, "的", "了", "在", "是")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, stopwordsPath, filepath.Join(base, "logs"))

	return &cliTestEnv{
		baseDir:       base,
		configPath:    configPath,
		stopwordsPath: stopwordsPath,
	}
}

func writeTestConfig(t *testing.T, path, stopwordsPath, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nstopwords_file = %q\nlog_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		stopwordsPath, logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
