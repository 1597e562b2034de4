// Package appmode provides 2 methods to work in preliminarily defined mode 'search' and 'node'
package appmode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"github.com/docker/distribution/uuid"
	"github.com/rs/zerolog"
)

var ErrChecksumMismatch = errors.New("node result checksum mismatch")

const (
	pingTimeout   = 5 * time.Second
	searchTimeout = 1 * time.Minute
)

// RunSearch reads the input, searches it locally or on ai.Node and prints matched lines to out.
// Zero matches is not an error.
func RunSearch(ctx context.Context, ai *model.AppInit, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	sp := ai.SearchParam

	// весь вход читаем до поиска, ошибки чтения в поиск не попадают
	contents, err := reader.ReadInput(in, sp.FilePath)
	if err != nil {
		return err
	}
	logger.Debug().Str("file", sp.FilePath).Int("bytes", len(contents)).Bool("ignore_case", sp.IgnoreCase).Msg("Input loaded")

	var lines []string
	switch ai.Node {
	case "":
		lines = matcher.Run(sp.Query, contents, sp.IgnoreCase)
	default:
		lines, err = searchOnNode(ctx, &http.Client{}, ai.Node, sp, contents, logger)
		if err != nil {
			return err
		}
	}
	logger.Debug().Int("matches", len(lines)).Msg("Search finished")

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func searchOnNode(ctx context.Context, client *http.Client, node string, sp model.SearchParam, contents string, logger zerolog.Logger) ([]string, error) {
	// проверяем пингом, что node доступна
	pCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := transport.Ping(pCtx, client, node); err != nil {
		return nil, err
	}

	task := &model.SearchTask{
		TaskID:     uuid.Generate().String(),
		Query:      sp.Query,
		IgnoreCase: sp.IgnoreCase,
		Contents:   contents,
	}
	logger.Debug().Str("tid", task.TaskID).Str("node", node).Msg("Sending task")

	sCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	res, err := transport.SendTask(sCtx, client, node, task)
	if err != nil {
		return nil, err
	}

	// сверяем ответ: тот ли это task и не побились ли строки по дороге
	if res.TaskID != task.TaskID {
		return nil, fmt.Errorf("node %q answered for task %q instead of %q", node, res.TaskID, task.TaskID)
	}
	if got := processor.Checksum(res.Output); got != res.HashSumm {
		return nil, fmt.Errorf("%w: node %q sent %d, lines hash to %d", ErrChecksumMismatch, node, res.HashSumm, got)
	}
	return res.Output, nil
}
