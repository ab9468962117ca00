package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/knadh/koanf/providers/file"

	"github.com/llehouerou/paneflare/internal/logx"
)

// ErrNoConfigFile is returned by Watch when none of the paths exist.
var ErrNoConfigFile = errors.New("no config file to watch")

// Reload carries the outcome of re-reading the config after a file change.
// Err is set when the new files fail to load or validate; the old config should stay.
type Reload struct {
	Config *Config
	Err    error
}

// Watch reloads the config whenever one of the existing paths changes.
// The channel is closed once ctx is done.
func Watch(ctx context.Context, log logx.Logger, paths ...string) (<-chan Reload, error) {
	var providers []*file.File
	var mu sync.Mutex
	closed := false
	ch := make(chan Reload, 1)

	reload := func() {
		cfg, err := LoadFrom(paths...)
		if err == nil {
			err = cfg.Validate()
		}
		r := Reload{Config: cfg, Err: err}
		if err != nil {
			r.Config = nil
			log.Warn("config reload rejected", logx.Err(err))
		} else {
			log.Info("config reloaded")
		}

		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		// Keep only the newest result if the consumer lags.
		select {
		case <-ch:
		default:
		}
		ch <- r
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		p := file.Provider(path)
		err := p.Watch(func(_ any, err error) {
			if err != nil {
				log.Warn("config watch error", logx.String("path", path), logx.Err(err))
				return
			}
			reload()
		})
		if err != nil {
			for _, w := range providers {
				_ = w.Unwatch()
			}
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
		providers = append(providers, p)
		log.Debug("watching config", logx.String("path", path))
	}
	if len(providers) == 0 {
		return nil, ErrNoConfigFile
	}

	go func() {
		<-ctx.Done()
		for _, p := range providers {
			_ = p.Unwatch()
		}
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch, nil
}
