// Package watch triggers bundle reloads when the bundles directory changes
// on disk, so skin and mod edits show up without restarting the daemon.
package watch

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Reloader is the slice of the manager surface the watcher needs.
type Reloader interface {
	ReloadBundles() bool
}

// Watcher debounces filesystem events under one root directory into reload
// passes. Rapid bursts (archive extraction, editor save storms) collapse
// into a single reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	reloader Reloader
	log      zerolog.Logger
	debounce time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// New builds a watcher over root. Start must be called to begin watching.
func New(root string, r Reloader, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:      fsw,
		reloader: r,
		log:      log,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the debounce window. Only safe before Start.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Start runs the event loop in a goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("bundle dir changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if w.reloader.ReloadBundles() {
				w.log.Info().Msg("bundles reloaded")
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watcher error")
		case <-w.stopCh:
			return
		}
	}
}
