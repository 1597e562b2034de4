// Package parser puts command-line arguments and environment into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/rs/zerolog"
)

const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvLogLevel   = "MINIGREP_LOG_LEVEL"
	EnvNode       = "MINIGREP_NODE"

	DefaultLogLevel = "info"
	Usage           = "Usage: minigrep [-node URL] [-mode search|node] [-address ADDR] [--] query [file]\n(use -- before a query that starts with '-')"
)

var (
	ErrMissingQuery  = errors.New("didn't get a query string")
	ErrEmptyFilePath = errors.New("empty file path")
)

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// InitAppMode builds AppInit from args (without the program name). Nothing is searched
// until it succeeds.
func InitAppMode(args []string, lookupEnv LookupEnv) (*model.AppInit, error) {
	var appInit model.AppInit

	flagParser := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flagParser.SetOutput(io.Discard)
	mode := flagParser.String("mode", string(model.ModeSearch), "specify mode of the app: 'search' or 'node'")
	addr := flagParser.String("address", "", "specify address to listen on in 'node'-mode")
	node := flagParser.String("node", envOrDefault(lookupEnv, EnvNode, ""), "delegate the search to the node running on this URL")

	// парсим аргументы
	if err := flagParser.Parse(args); err != nil {
		return nil, fmt.Errorf("%w\n%s", err, Usage)
	}

	appInit.Mode = model.AppMode(*mode)
	appInit.LogLevel = envOrDefault(lookupEnv, EnvLogLevel, DefaultLogLevel)
	if _, err := zerolog.ParseLevel(appInit.LogLevel); err != nil {
		return nil, fmt.Errorf("bad %s: %w", EnvLogLevel, err)
	}

	// проверяем режим
	switch appInit.Mode {
	case model.ModeSearch:
		if err := initSearchParam(&appInit, flagParser.Args(), lookupEnv); err != nil {
			return nil, err
		}
		appInit.Node = *node
	case model.ModeNode:
		if *addr == "" {
			return nil, errors.New("empty node address")
		}
		appInit.Address = *addr
	default:
		return nil, fmt.Errorf("unknown mode %q specified", appInit.Mode)
	}

	return &appInit, nil
}

func initSearchParam(ai *model.AppInit, args []string, lookupEnv LookupEnv) error {
	// лишние позиционные аргументы игнорируем
	switch len(args) {
	case 0:
		return fmt.Errorf("%w\n%s", ErrMissingQuery, Usage)
	case 1:
		ai.SearchParam.Query = args[0]
	default:
		if args[1] == "" {
			return ErrEmptyFilePath
		}
		ai.SearchParam.Query = args[0]
		ai.SearchParam.FilePath = args[1]
	}

	// важен только факт наличия переменной, значение не смотрим
	_, ai.SearchParam.IgnoreCase = lookupEnv(EnvIgnoreCase)
	return nil
}

func envOrDefault(lookupEnv LookupEnv, key, def string) string {
	if v, ok := lookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
