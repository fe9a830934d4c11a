package driving

import (
	"context"

	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// CatalogService manages the services catalog of the active site.
// Every mutation persists synchronously and then emits a
// siteDataUpdated notification.
type CatalogService interface {
	// List returns the catalog in insertion (display) order.
	List(ctx context.Context) ([]domain.ServiceRecord, error)

	// Add validates the input, assigns a fresh unique id and appends
	// the record to the end of the catalog.
	Add(ctx context.Context, input domain.ServiceInput) (*domain.ServiceRecord, error)

	// Update merges a partial patch onto an existing record.
	// ErrNotFound if the id is absent.
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.ServiceRecord, error)

	// Delete permanently removes a record. ErrNotFound if absent;
	// the remaining records keep their order.
	Delete(ctx context.Context, id string) error

	// DeleteBatch removes all records whose ids are listed, in one
	// persisted write. The caller must have confirmed the operation;
	// unconfirmed requests fail with ErrNotConfirmed. Returns the
	// number of records removed.
	DeleteBatch(ctx context.Context, ids []string, confirmed bool) (int, error)

	// ToggleActive flips a record's active flag. ErrNotFound if absent.
	ToggleActive(ctx context.Context, id string) (*domain.ServiceRecord, error)

	// Query evaluates a filter/pagination spec against the current
	// catalog snapshot without mutating it.
	Query(ctx context.Context, spec domain.QuerySpec) (*domain.QueryResult, error)
}
