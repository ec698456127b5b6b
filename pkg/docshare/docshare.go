/**
 * @description
 * Document generation boundary. The dashboard hands a rendered HTML report
 * to this collaborator and gets back a shareable file path; the actual
 * share/print step is owned by the surrounding platform.
 */

package docshare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Renderer turns an HTML document into a shareable file.
type Renderer interface {
	RenderHTML(ctx context.Context, html string) (string, error)
}

// FileRenderer writes the document into a directory and returns its path.
type FileRenderer struct {
	Dir string
}

// NewFileRenderer uses dir for the generated documents, defaulting to the
// system temp directory.
func NewFileRenderer(dir string) *FileRenderer {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FileRenderer{Dir: dir}
}

func (r *FileRenderer) RenderHTML(ctx context.Context, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := fmt.Sprintf("ziganya-report-%d.html", time.Now().UnixMilli())
	path := filepath.Join(r.Dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report document: %w", err)
	}
	return path, nil
}
