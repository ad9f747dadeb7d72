package hostfs

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
)

var ErrInvalidPath = errors.New("invalid host path")

var (
	rootMu sync.RWMutex
	root   = "/"
)

// SetRoot changes the host filesystem root. The default "/" operates on the
// local system; containers with a bind-mounted host pass the mount point.
func SetRoot(dir string) {
	rootMu.Lock()
	defer rootMu.Unlock()
	if dir == "" {
		dir = "/"
	}
	root = dir
}

func Root() string {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// Path joins the host root with a relative path (no leading slash).
// Example: Path("etc/passwd") -> /etc/passwd, or /host/etc/passwd under
// SetRoot("/host").
func Path(rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(Root(), clean), nil
}

// Abs maps an absolute host path (e.g. /home/user200) into the local path
// (identity under the default root).
func Abs(abs string) (string, error) {
	if abs == "" || !strings.HasPrefix(abs, "/") {
		return "", ErrInvalidPath
	}
	clean := filepath.Clean(abs)
	if !strings.HasPrefix(clean, "/") {
		return "", ErrInvalidPath
	}
	return filepath.Join(Root(), strings.TrimPrefix(clean, "/")), nil
}
