package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/services"
	"github.com/custodia-labs/minigrep/internal/logger"
)

const poem = `I'm nobody! Who are you?
Are you nobody, too?
Then there's a pair of us - don't tell!
They'd banish us, you know.

How dreary to be somebody!
How public, like a frog
To tell your name the livelong day
To an admiring bog!
`

// envMap returns a lookup function backed by a fixed environment.
func envMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// setupTestServices wires the real search pipeline, an empty environment
// and no settings file. Package state is restored when the test ends.
func setupTestServices(t *testing.T) {
	t.Helper()

	oldSearch, oldLoader, oldLookup := searchService, settingsLoader, lookupEnv
	searchService = services.NewSearchService(filesystem.NewReader())
	settingsLoader = nil
	lookupEnv = envMap(nil)

	t.Cleanup(func() {
		searchService, settingsLoader, lookupEnv = oldSearch, oldLoader, oldLookup
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetColorMode(domain.ColorAuto)
		logger.SetOutput(os.Stderr)
	})
}

func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// writePoem writes the test poem to a temp file and returns its path.
func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem), 0600))
	return path
}

// execute runs the root command and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
