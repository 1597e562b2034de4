// Package transport provides a new server-entity(by ginext) for node-mode operability with handlers to serve endpoints,
// and the client side used to delegate a search to such a node
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

const (
	PingPath   = "/ping"
	SearchPath = "/search"
)

type SearchProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc   SearchProcessor
	logger zerolog.Logger
}

func NewNodeServer(addr string, proc SearchProcessor, logger zerolog.Logger) *http.Server {
	h := handlers{proc: proc, logger: logger}

	engine := ginext.New("release")
	engine.GET(PingPath, h.HealthCheck)
	engine.POST(SearchPath, h.ReceiveTask)

	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.logger.Debug().Msg("Received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to parse task")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	h.logger.Info().Str("tid", task.TaskID).Bool("ignore_case", task.IgnoreCase).Int("bytes", len(task.Contents)).Msg("Received task")

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	h.logger.Debug().Str("tid", res.TaskID).Int("matches", len(res.Output)).Uint64("hash", res.HashSumm).Msg("Calculated result")

	ctx.JSON(http.StatusOK, res)
}
