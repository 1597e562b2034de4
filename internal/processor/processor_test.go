package processor_test

import (
	"context"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestProcessInput(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
	cases := []struct {
		name    string
		task    *model.SearchTask
		wantRes *model.SearchResult
		ctx     context.Context
	}{
		{
			name: "Positive - case-sensitive",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "duct",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"safe, fast, productive."},
				HashSumm: hasher(t, []string{"safe, fast, productive."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - ignore case",
			task: &model.SearchTask{
				TaskID:     "testTask",
				Query:      "rUsT",
				IgnoreCase: true,
				Contents:   contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{"Rust:", "Trust me."},
				HashSumm: hasher(t, []string{"Rust:", "Trust me."}),
			},
			ctx: context.Background(),
		},
		{
			name: "Positive - no matches",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "xyz",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: context.Background(),
		},
		{
			name: "Negative - cancelled context",
			task: &model.SearchTask{
				TaskID:   "testTask",
				Query:    "Rust",
				Contents: contents,
			},
			wantRes: &model.SearchResult{
				TaskID:   "testTask",
				Output:   []string{},
				HashSumm: hasher(t, []string{}),
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			test := processor.Processor{}

			res := test.ProcessInput(tt.ctx, tt.task)

			require.Equal(t, tt.wantRes, res)
		})
	}
}

func TestChecksumSeparatesLines(t *testing.T) {
	require.NotEqual(t, processor.Checksum([]string{"ab", "c"}), processor.Checksum([]string{"a", "bc"}))
	require.NotEqual(t, processor.Checksum([]string{}), processor.Checksum([]string{""}))
}

func hasher(t *testing.T, input []string) uint64 {
	t.Helper()
	hs := xxhash.New()
	for _, s := range input {
		_, err := hs.WriteString(s + "\n")
		require.NoError(t, err, "failed to write data to count hash")
	}

	return hs.Sum64()
}
