package bill

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Repository handles receipt persistence
type Repository struct {
	dir string
}

// NewRepository creates a receipt repository rooted at dir.
// An empty dir means the current working directory.
func NewRepository(dir string) *Repository {
	if dir == "" {
		dir = "."
	}
	return &Repository{dir: dir}
}

// Path returns where the receipt is written
func (r *Repository) Path() string {
	return filepath.Join(r.dir, ReceiptFileName)
}

// SaveReceipt writes the receipt, replacing any previous one
func (r *Repository) SaveReceipt(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := r.Path()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path, nil
}
