// Package pidfile records the running API server so a second `wellfit serve`
// against the same config dir refuses to start.
package pidfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/wellfit/internal/constants"
)

var findProcessFunc = ps.FindProcess

var (
	ErrNotRunning = errors.New("no local server is running")
	ErrMalformed  = errors.New("lockfile is malformed")
)

// Entry is one lockfile record: "addr|pid".
type Entry struct {
	Addr string
	PID  int
}

func Path(configDir string) string {
	return filepath.Join(configDir, constants.ServerLockfile)
}

func Write(path string, e Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(fmt.Sprintf("%s|%d\n", e.Addr, e.PID)), 0644)
}

func Read(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNotRunning
		}
		return Entry{}, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return Entry{}, ErrMalformed
	}
	pid, err := strconv.Atoi(parts[1])
	if err != nil || pid <= 0 {
		return Entry{}, fmt.Errorf("%w: invalid process ID %q", ErrMalformed, parts[1])
	}
	return Entry{Addr: parts[0], PID: pid}, nil
}

// Running returns the lockfile entry when its process is still a live
// wellfit binary. A stale lockfile reports ErrNotRunning.
func Running(path string) (Entry, error) {
	e, err := Read(path)
	if err != nil {
		return Entry{}, err
	}
	process, err := findProcessFunc(e.PID)
	if err != nil || process == nil {
		return Entry{}, ErrNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.AppName) {
		return Entry{}, ErrNotRunning
	}
	return e, nil
}

// Acquire writes a lockfile for the current process, failing when another
// live server already holds it. The returned func removes the lockfile.
func Acquire(path, addr string) (release func(), err error) {
	if e, err := Running(path); err == nil {
		if e.PID != os.Getpid() {
			return nil, fmt.Errorf("a server is already running (pid %d, %s)", e.PID, e.Addr)
		}
	}
	if err := Write(path, Entry{Addr: addr, PID: os.Getpid()}); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return func() { _ = os.Remove(path) }, nil
}
