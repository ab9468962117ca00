// Package spool is a drop-directory transport: producers write one event per
// file and a Watcher consumes them.
package spool

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/llehouerou/paneflare/internal/logx"
)

// Ext is the extension of event files. Anything else in the directory is ignored.
const Ext = ".json"

const tmpPrefix = ".tmp-"

var seq atomic.Uint64

// Write drops payload into dir as a new event file. The file appears atomically.
func Write(dir string, payload []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create spool dir: %w", err)
	}

	f, err := os.CreateTemp(dir, tmpPrefix+"*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write event: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close event: %w", err)
	}

	name := filepath.Join(dir, eventName())
	if err := os.Rename(tmp, name); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("publish event: %w", err)
	}
	return name, nil
}

// eventName sorts by creation time so a drain replays events in order.
func eventName() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10) + "-" +
		strconv.Itoa(os.Getpid()) + "-" +
		strconv.FormatUint(seq.Add(1), 10) + Ext
}

func isEvent(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, Ext) && !strings.HasPrefix(base, ".")
}

// Event is one consumed file.
type Event struct {
	Name    string
	Payload []byte
}

// Watcher consumes event files from a directory.
type Watcher struct {
	dir    string
	events chan Event
	errs   chan error
	log    logx.Logger
}

// NewWatcher creates a watcher for dir. The directory is created if missing.
func NewWatcher(dir string, log logx.Logger) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("spool dir is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Watcher{
		dir:    dir,
		events: make(chan Event, 64),
		errs:   make(chan error, 8),
		log:    log,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Events delivers consumed payloads. Closed when Run returns.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors delivers non-fatal read failures. Never closed; reads are best effort.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run drains files already present, then consumes new ones until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch before draining so files written in between are not missed.
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Debug("spool watcher started", logx.String("dir", w.dir))

	if err := w.Drain(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("spool watcher closed")
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Write) == 0 || !isEvent(ev.Name) {
				continue
			}
			if !w.consume(ctx, ev.Name) {
				return nil
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("spool watcher closed")
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.Warn("spool watch overflow, rescanning", logx.String("dir", w.dir))
				if err := w.Drain(ctx); err != nil {
					return err
				}
				continue
			}
			w.report(err)
		}
	}
}

// Drain consumes every event file currently in the directory, oldest name first.
func (w *Watcher) Drain(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read spool dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && isEvent(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		if !w.consume(ctx, filepath.Join(w.dir, name)) {
			return nil
		}
	}
	return nil
}

// consume reads and removes path and delivers it. It returns false if ctx ended.
func (w *Watcher) consume(ctx context.Context, path string) bool {
	payload, err := os.ReadFile(path)
	if err != nil {
		// A Write and Create event for the same file race; the loser finds it gone.
		if !errors.Is(err, os.ErrNotExist) {
			w.report(fmt.Errorf("read %s: %w", filepath.Base(path), err))
		}
		return true
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true
		}
		w.report(fmt.Errorf("remove %s: %w", filepath.Base(path), err))
	}

	select {
	case w.events <- Event{Name: filepath.Base(path), Payload: payload}:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) report(err error) {
	w.log.Warn("spool error", logx.Err(err))
	select {
	case w.errs <- err:
	default:
	}
}
