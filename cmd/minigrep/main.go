// Command minigrep prints the lines of a file that contain a query.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minigrep/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/cli"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/core/services"
	"github.com/custodia-labs/minigrep/internal/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run wires the services, executes the CLI and returns the exit code:
// 0 on success, 1 on usage or operation errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	cli.SetSearchService(services.NewSearchService(filesystem.NewReader()))
	cli.SetSettingsLoader(openSettings)

	err := cli.Execute(ctx, args, stdout, stderr)
	if err == nil {
		return 0
	}

	var usageErr *cli.UsageError
	var opErr *domain.OperationError
	switch {
	case errors.As(err, &usageErr):
		logger.Error("Problem parsing arguments: %v", err)
		logger.Error("%s", cli.UsageLine())
	case errors.As(err, &opErr):
		logger.Error("Operation error: %v", opErr.Err)
	default:
		logger.Error("%v", err)
	}
	return 1
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}
