// internal/domain/receipt/log.go
package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Writer persists receipts
type Writer interface {
	Append(ctx context.Context, r *Receipt) error
}

// FileLog appends receipt records to a text file. The file is write-only from
// the terminal's point of view; nothing reads it back.
type FileLog struct {
	path string
	mu   sync.Mutex
}

// NewFileLog creates a receipt log at path. The file is created on first append.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

// Path returns the log file location
func (l *FileLog) Path() string {
	return l.path
}

// Append writes one formatted record to the end of the log
func (l *FileLog) Append(ctx context.Context, r *Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile: %w", err)
	}

	if _, err := f.WriteString(r.Format()); err != nil {
		f.Close()
		return fmt.Errorf("f.WriteString: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("f.Close: %w", err)
	}

	return nil
}
