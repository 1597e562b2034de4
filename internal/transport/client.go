package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

// Ping checks that the node at addr answers 200 on the health endpoint.
func Ping(ctx context.Context, client *http.Client, addr string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(addr, PingPath), nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request for node %q: %w", addr, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("node %q is unreachable: %w", addr, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node %q answered ping with %s", addr, resp.Status)
	}
	return nil
}

// SendTask posts task to the node and decodes its result. The result is not verified here.
func SendTask(ctx context.Context, client *http.Client, addr string, task *model.SearchTask) (*model.SearchResult, error) {
	raw, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to MARSHAL task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint(addr, SearchPath), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to build task request for node %q: %w", addr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task to node %q: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("node %q rejected task: %s: %s", addr, resp.Status, strings.TrimSpace(string(body)))
	}

	var result model.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to UNMARSHAL result from node %q: %w", addr, err)
	}
	return &result, nil
}

func endpoint(addr, path string) string {
	return strings.TrimRight(addr, "/") + path
}
