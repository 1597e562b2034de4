package appmode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// RunNode serves search tasks on ai.Address until ctx is done or the server fails.
func RunNode(ctx context.Context, stop context.CancelFunc, ai *model.AppInit, logger zerolog.Logger) error {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(ai.Address, processor.Processor{}, logger)

	// запуск сервера
	srvErr := make(chan error, 1)
	go func() {
		logger.Info().Str("address", srv.Addr).Msg("Node running")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
			stop()
			return
		}
		logger.Info().Msg("Server gracefully stopping...")
	}()

	<-ctx.Done()

	// закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown node %q correctly: %w", ai.Address, err)
	}

	select {
	case err := <-srvErr:
		return fmt.Errorf("node %q stopped: %w", ai.Address, err)
	default:
	}
	logger.Info().Str("address", ai.Address).Msg("Node server is closed")
	return nil
}
