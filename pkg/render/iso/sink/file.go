package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/WJZ-P/CommitCraft/pkg/render/iso"
)

// WriteFile writes an already serialized document into dir under the
// scene's download name for ext, and returns the path written.
func WriteFile(dir string, s *iso.Scene, ext string, data []byte) (string, error) {
	if s == nil {
		return "", fmt.Errorf("write %s: no scene", ext)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, s.DownloadName(ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
