package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogFileName is the name of the active daemon log file.
const LogFileName = "whkd.log"

// RotatorOptions configures a LogRotator.
type RotatorOptions struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.WriteCloser over a log file that rolls over by size.
// Rolled files are named whkd.log.<timestamp>[.gz].
type LogRotator struct {
	mu sync.Mutex

	dir        string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool

	file *os.File
	size int64
	now  func() time.Time
}

// NewLogRotator opens (or creates) the log file in opts.Dir.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.Dir == "" {
		return nil, errors.New("log directory is empty")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	maxSizeMB := opts.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}

	r := &LogRotator{
		dir:        opts.Dir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		compress:   opts.Compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, LogFileName)
}

func (r *LogRotator) open() error {
	path := r.Path()
	r.size = 0
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate moves the active file aside and opens a fresh one. Must be called with r.mu held.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, LogFileName+"."+r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune removes rolled files older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var kept []backup
	now := r.now()
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), LogFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, e.Name()))
			continue
		}
		kept = append(kept, backup{name: e.Name(), modTime: info.ModTime()})
	}

	if r.maxBackups <= 0 || len(kept) <= r.maxBackups {
		return
	}
	slices.SortFunc(kept, func(a, b backup) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range kept[:len(kept)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, b.name))
	}
}

// Close closes the active log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
