// Package watcher monitors a drop directory for certificate documents and
// feeds new or changed files into the scan service. Scans are rate limited
// so that bulk drops (unzipping a certificate archive into the watched
// directory) do not saturate the machine with pdftotext processes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/domain"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/core/ports/driving"
	"github.com/andreasbjornsund-hub/ex-certificate-scanner/internal/logger"
)

// settleDelay is how long a file must stay quiet after its last write
// event before it is scanned. Copies into the watched directory arrive
// as a burst of Write events.
const settleDelay = 500 * time.Millisecond

// Default rate limit for scans triggered by file events.
const (
	scansPerSecond = 2.0
	scanBurst      = 4
)

// ScanFunc receives the outcome of each triggered scan. rec is nil when
// err is non-nil.
type ScanFunc func(path string, rec *domain.ScanRecord, err error)

// Watcher watches a directory and scans documents as they appear.
type Watcher struct {
	scans      driving.ScanService
	limiter    *rate.Limiter
	extensions map[string]bool

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// New creates a watcher that scans files with the given extensions
// (lower-case, leading dot) through the scan service.
func New(scans driving.ScanService, extensions []string) *Watcher {
	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = true
	}

	return &Watcher{
		scans:      scans,
		limiter:    rate.NewLimiter(rate.Limit(scansPerSecond), scanBurst),
		extensions: extSet,
		pending:    make(map[string]*time.Timer),
	}
}

// Watch blocks watching dir until ctx is cancelled, invoking handle for
// every completed scan. Returns the context error on cancellation.
func (w *Watcher) Watch(ctx context.Context, dir string, handle ScanFunc) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()
	defer w.cancelPending()

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	logger.Info("watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return domain.ErrWatcherClosed
			}
			if !w.shouldScan(event) {
				continue
			}
			logger.Debug("event %s on %s", event.Op, event.Name)
			w.schedule(ctx, event.Name, handle)

		case err, ok := <-fsw.Errors:
			if !ok {
				return domain.ErrWatcherClosed
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// shouldScan filters events down to fresh content in files we can parse.
func (w *Watcher) shouldScan(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}

	if !w.extensions[strings.ToLower(filepath.Ext(event.Name))] {
		return false
	}

	// Directories can match the extension filter in pathological cases.
	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return false
	}

	return true
}

// schedule debounces repeated events for the same path, then scans once
// the file has settled.
func (w *Watcher) schedule(ctx context.Context, path string, handle ScanFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if timer, ok := w.pending[path]; ok {
		timer.Reset(settleDelay)
		return
	}

	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()
		if closed {
			return
		}

		if err := w.limiter.Wait(ctx); err != nil {
			return
		}

		rec, err := w.scans.ScanFile(ctx, path)
		if err != nil {
			logger.Warn("scan of %s failed: %v", path, err)
			handle(path, nil, err)
			return
		}
		logger.Debug("scanned %s (confidence %d)", path, rec.Confidence)
		handle(path, rec, nil)
	})
}

// cancelPending stops all outstanding debounce timers.
func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}
