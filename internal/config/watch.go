package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
)

// Watcher reloads Config from disk whenever its backing YAML file
// changes, so a long-lived orchestrator process can pick up rotated
// provider API keys without a restart. Grounded on the teacher's use
// of fsnotify for workspace file watching.
type Watcher struct {
	mu     sync.RWMutex
	path   string
	cfg    *Config
	fsw    *fsnotify.Watcher
	logger *zap.SugaredLogger
}

// NewWatcher loads path once and begins watching it for changes.
func NewWatcher(path string) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{path: path, cfg: cfg, fsw: fsw, logger: logging.Component("config")}
	if err := fsw.Add(path); err != nil {
		// Watching is best-effort: a config file that doesn't exist
		// yet, or lives on a filesystem without inotify support, just
		// means hot-reload never fires. The resolved defaults still work.
		w.logger.Warnw("config watch unavailable, continuing with static config", "path", path, "error", err)
		return w, nil
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warnw("config reload failed, keeping previous config", "path", w.path, "error", err)
				continue
			}
			w.mu.Lock()
			w.cfg = cfg
			w.mu.Unlock()
			w.logger.Infow("config reloaded", "path", w.path)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("config watcher error", "error", err)
		}
	}
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
