// Package events implements the change notification bus. In-process
// delivery rides on a pubsub hub; an optional stamp file lets separate
// sitewright processes on the same machine pick up each other's writes.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/juju/pubsub/v2"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
	"github.com/sitewright-labs/sitewright-cli/internal/core/ports/driven"
)

// stampFileName is the file the bus touches on every publish when it
// runs in persistent mode.
const stampFileName = "events.stamp"

// stamp is the payload written to the stamp file. Instance identifies
// the publishing process so a watcher can skip its own events; Seq
// grows monotonically per process so a watcher can drop re-reads.
type stamp struct {
	Instance string           `json:"instance"`
	Kind     domain.EventKind `json:"kind"`
	Seq      uint64           `json:"seq"`
	At       time.Time        `json:"at"`
}

var _ driven.EventBus = (*Bus)(nil)

// Bus is a pubsub-backed implementation of driven.EventBus. Handlers
// run asynchronously on their own goroutines; Publish never blocks on
// subscriber work.
type Bus struct {
	hub      *pubsub.SimpleHub
	instance string

	mu        sync.Mutex
	seq       uint64
	stampPath string // empty in local-only mode
}

// NewBus creates an in-process bus. Events reach subscribers within
// this process only.
func NewBus() *Bus {
	return &Bus{
		hub:      pubsub.NewSimpleHub(nil),
		instance: uuid.NewString(),
	}
}

// NewPersistentBus creates a bus that additionally records every
// publish in a stamp file under dataDir, so that a Watcher in another
// process can mirror the event.
func NewPersistentBus(dataDir string) (*Bus, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	b := NewBus()
	b.stampPath = filepath.Join(dataDir, stampFileName)
	return b, nil
}

// Publish broadcasts an event to current subscribers and, in
// persistent mode, records it in the stamp file.
func (b *Bus) Publish(kind domain.EventKind) {
	b.hub.Publish(string(kind), nil)
	if b.stampPath != "" {
		b.writeStamp(kind)
	}
}

// Subscribe registers a payload-less handler for an event kind.
func (b *Bus) Subscribe(kind domain.EventKind, handler func()) func() {
	return b.hub.Subscribe(string(kind), func(string, interface{}) {
		handler()
	})
}

// InstanceID returns the identifier this bus stamps its publishes with.
func (b *Bus) InstanceID() string {
	return b.instance
}

// StampPath returns the stamp file path, or "" in local-only mode.
func (b *Bus) StampPath() string {
	return b.stampPath
}

// dispatchLocal delivers an event to local subscribers without writing
// the stamp file. Used by the watcher to relay remote events; going
// through Publish would echo them back out.
func (b *Bus) dispatchLocal(kind domain.EventKind) {
	b.hub.Publish(string(kind), nil)
}

// writeStamp replaces the stamp file atomically so a concurrent reader
// never sees a partial payload.
func (b *Bus) writeStamp(kind domain.EventKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	payload, err := json.Marshal(stamp{
		Instance: b.instance,
		Kind:     kind,
		Seq:      b.seq,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return
	}

	tmp := b.stampPath + ".tmp"
	if err := os.WriteFile(tmp, payload, 0600); err != nil {
		return
	}
	_ = os.Rename(tmp, b.stampPath)
}

// readStamp parses the current stamp file.
func readStamp(path string) (*stamp, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var st stamp
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
