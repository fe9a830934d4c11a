package driven

import "github.com/sitewright-labs/sitewright-cli/internal/core/domain"

// EventBus broadcasts payload-less change notifications so that
// independently rendered views stay consistent without sharing state.
//
// The bus is broadcast-only: no acknowledgement, no queueing, no
// replay. An event fires strictly after the write it announces has
// completed, and subscribers registered after an event has fired never
// see it.
type EventBus interface {
	// Publish broadcasts an event to current subscribers.
	Publish(kind domain.EventKind)

	// Subscribe registers a handler for an event kind and returns a
	// function that unsubscribes it. The handler receives no payload;
	// consumers re-fetch their view from the stores.
	Subscribe(kind domain.EventKind, handler func()) (unsubscribe func())
}
