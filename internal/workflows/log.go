package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/mwhitfield/codsync/internal/audit"
	cserrors "github.com/mwhitfield/codsync/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the operation log entries, most recent first.
	Entries []audit.Entry

	// TotalEntries is the count of entries before the limit was applied.
	TotalEntries int
}

// Log reads the operation log.
//
// Returns ErrFileNotFound if no operation log exists yet.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	logPath := audit.LogPath()
	if logPath == "" {
		return nil, cserrors.ErrFileNotFound
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", cserrors.ErrFileNotFound, logPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading operation log: %w", err)
	}

	entries := audit.ParseEntries(data)

	// Most recent first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	result := &LogResult{TotalEntries: len(entries)}
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	result.Entries = entries

	return result, nil
}
