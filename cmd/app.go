package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/logging"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv parser.LookupEnv) int {
	// инициализировать параметры запуска - режим и прочее:
	appParam, err := parser.InitAppMode(args, lookupEnv)
	if err != nil {
		logger := logging.New(stderr, parser.DefaultLogLevel)
		logger.Error().Err(err).Msg("Problem parsing arguments")
		return 1
	}
	logger := logging.New(stderr, appParam.LogLevel)

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeNode:
		err = appmode.RunNode(ctx, stop, appParam, logger)
	default:
		err = appmode.RunSearch(ctx, appParam, stdin, stdout, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Application error")
		return 1
	}
	return 0
}
