// Package processor runs the search for a task received by a node and checksums the result
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	// клиент уже ушел - искать незачем
	if ctx.Err() == nil {
		result.Output = matcher.Run(task.Query, task.Contents, task.IgnoreCase)
	}

	// считаем общий хеш
	result.HashSumm = Checksum(result.Output)

	return &result
}

// Checksum is xxhash64 over every line followed by '\n'.
func Checksum(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
