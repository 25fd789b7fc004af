// Package testutil provides a standardized harness for end-to-end
// compilation tests: manifest files in, rendered environment bindings out.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/faasbind/internal/app"
	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/hcl"
	"github.com/vk/faasbind/internal/yaml"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of one compilation test run.
type HarnessResult struct {
	Output    string // rendered env bindings, empty when compilation failed
	LogOutput string
	Err       error
}

// RunCompileTest writes the given manifest files to a temporary directory
// and runs a full App compilation over it.
func RunCompileTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunCompileTestWithConfig(t, files, nil)
}

// RunCompileTestWithConfig is RunCompileTest with a hook to adjust the app
// configuration (e.g. enabling check-only mode) before the run.
func RunCompileTestWithConfig(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	yamlOnly := len(files) > 0
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
		if ext := filepath.Ext(name); ext != ".yaml" && ext != ".yml" {
			yamlOnly = false
		}
	}

	var loader config.Loader = hcl.NewLoader()
	if yamlOnly {
		loader = yaml.NewLoader()
	}

	appConfig, err := app.NewConfig(app.Config{
		ManifestPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	})
	require.NoError(t, err)
	if mutate != nil {
		mutate(appConfig)
	}

	outBuffer := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}

	testApp := app.NewApp(outBuffer, logBuffer, appConfig, loader)
	runErr := testApp.Run(context.Background())

	if os.Getenv("FAASBIND_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}

// ParseEnvOutput parses rendered KEY=value lines back into a map for
// assertions that don't care about ordering.
func ParseEnvOutput(t *testing.T, output string) map[string]string {
	t.Helper()
	env := make(map[string]string)
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		require.True(t, found, "malformed env line: %q", line)
		env[key] = value
	}
	return env
}
