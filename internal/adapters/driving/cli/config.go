package cli

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// UsageError reports missing or malformed command line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ParseConfig compiles positional arguments and the environment into a
// filename and search configuration. Arguments are the query, the filename
// and an optional third token; anything after the third token is ignored.
//
// It logs a notice when the third token is not "ln" and always logs which
// case mode is in effect.
func ParseConfig(args []string, lookupEnv func(string) (string, bool)) (string, domain.SearchConfig, error) {
	if len(args) < 1 {
		return "", domain.SearchConfig{}, &UsageError{Err: domain.ErrMissingQuery}
	}
	if len(args) < 2 {
		return "", domain.SearchConfig{}, &UsageError{Err: domain.ErrMissingFilename}
	}

	cfg := domain.SearchConfig{Query: args[0]}
	filename := args[1]

	if len(args) > 2 {
		if args[2] == domain.LineNumbersToken {
			cfg.ShowLineNumbers = true
		} else {
			logger.Notice("Invalid argument given for the third parameter")
		}
	}

	_, cfg.CaseSensitive = lookupEnv(domain.EnvCaseSensitive)
	if cfg.CaseSensitive {
		logger.Notice("%s is set", domain.EnvCaseSensitive)
	} else {
		logger.Notice("Set %s for case-sensitivity", domain.EnvCaseSensitive)
	}

	return filename, cfg, nil
}
