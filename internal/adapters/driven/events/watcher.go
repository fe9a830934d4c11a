package events

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/sitewright-labs/sitewright-cli/internal/logger"
)

// Watcher mirrors stamp-file writes from other sitewright processes
// into the local bus, so long-running commands see changes made by
// concurrent invocations. Events stamped with this process's own
// instance ID are ignored.
type Watcher struct {
	bus  *Bus
	fw   *fsnotify.Watcher
	done chan struct{}

	// last seq seen per publishing instance, to drop duplicate
	// filesystem notifications for one write.
	seen map[string]uint64
}

// NewWatcher starts watching the bus's stamp file. The bus must have
// been created with NewPersistentBus.
func NewWatcher(bus *Bus) (*Watcher, error) {
	if bus.StampPath() == "" {
		return nil, fmt.Errorf("bus has no stamp file to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	// Watch the directory, not the file: the stamp is replaced by
	// rename, which would drop a watch on the file itself.
	if err := fw.Add(filepath.Dir(bus.StampPath())); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching stamp directory: %w", err)
	}

	w := &Watcher{
		bus:  bus,
		fw:   fw,
		done: make(chan struct{}),
		seen: map[string]uint64{},
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.bus.StampPath() {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.relay()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("event watcher: %v", err)
		}
	}
}

// relay reads the stamp and republishes the event locally unless this
// process wrote it or the stamp was already handled.
func (w *Watcher) relay() {
	st, err := readStamp(w.bus.StampPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Debug("event watcher: reading stamp: %v", err)
		}
		return
	}
	if st.Instance == w.bus.InstanceID() {
		return
	}
	if !st.Kind.IsValid() {
		logger.Debug("event watcher: ignoring unknown event kind %q", st.Kind)
		return
	}
	if last, ok := w.seen[st.Instance]; ok && st.Seq <= last {
		return
	}
	w.seen[st.Instance] = st.Seq

	logger.Debug("event watcher: relaying %s from %s", st.Kind, st.Instance)
	w.bus.dispatchLocal(st.Kind)
}
