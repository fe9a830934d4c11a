package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewright-labs/sitewright-cli/internal/adapters/driven/storage/memory"
	"github.com/sitewright-labs/sitewright-cli/internal/core/domain"
)

// --- Test doubles ---

// recordingBus captures published events synchronously.
type recordingBus struct {
	mu     sync.Mutex
	events []domain.EventKind
}

func (b *recordingBus) Publish(kind domain.EventKind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, kind)
}

func (b *recordingBus) Subscribe(_ domain.EventKind, _ func()) func() {
	return func() {}
}

func (b *recordingBus) count(kind domain.EventKind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e == kind {
			n++
		}
	}
	return n
}

// corruptCatalogStore simulates an unreadable persisted catalog.
type corruptCatalogStore struct {
	memory.CatalogStore
}

func (s *corruptCatalogStore) Load(_ context.Context, _ string) ([]domain.ServiceRecord, error) {
	return nil, domain.ErrStorage
}

func setupCatalog(t *testing.T) (*CatalogService, *memory.CatalogStore, *recordingBus) {
	t.Helper()
	ctx := context.Background()

	siteStore := memory.NewSiteStore()
	require.NoError(t, siteStore.Save(ctx, domain.Site{ID: "site-1", Name: "Acme"}))
	require.NoError(t, siteStore.SetActive(ctx, "site-1"))

	catalogStore := memory.NewCatalogStore()
	bus := &recordingBus{}
	return NewCatalogService(catalogStore, siteStore, bus), catalogStore, bus
}

func validInput() domain.ServiceInput {
	return domain.ServiceInput{
		Title:       "Web Development",
		Description: "Websites",
		Category:    domain.CategoryWeb,
		Active:      true,
	}
}

// --- Add ---

func TestCatalogService_Add_AppendsAndNotifies(t *testing.T) {
	svc, _, bus := setupCatalog(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Web Development", rec.Title)
	assert.True(t, rec.Active)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, *rec, records[0])
	assert.Equal(t, 1, bus.count(domain.EventSiteDataUpdated))
}

func TestCatalogService_Add_AssignsUniqueIDs(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		rec, err := svc.Add(ctx, validInput())
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestCatalogService_Add_AppendsToEnd(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, validInput())
	require.NoError(t, err)
	in := validInput()
	in.Title = "Second"
	second, err := svc.Add(ctx, in)
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestCatalogService_Add_ValidationFailureLeavesCatalogUnchanged(t *testing.T) {
	svc, _, bus := setupCatalog(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.ServiceInput{Title: "", Description: "Y", Category: domain.CategoryWeb})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	records, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, records)
	assert.Zero(t, bus.count(domain.EventSiteDataUpdated))
}

func TestCatalogService_Add_CustomCategoryReplacesOther(t *testing.T) {
	svc, _, _ := setupCatalog(t)

	rec, err := svc.Add(context.Background(), domain.ServiceInput{
		Title:          "X",
		Description:    "Y",
		Category:       domain.CategoryOther,
		CustomCategory: "  DevOps  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "DevOps", rec.Category)
}

func TestCatalogService_Add_NoActiveSite(t *testing.T) {
	siteStore := memory.NewSiteStore()
	svc := NewCatalogService(memory.NewCatalogStore(), siteStore, nil)

	_, err := svc.Add(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrNoActiveSite)
}

// --- Update ---

func TestCatalogService_Update_PartialMerge(t *testing.T) {
	svc, _, bus := setupCatalog(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(ctx, rec.ID, domain.ServicePatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, rec.Description, updated.Description)
	assert.Equal(t, rec.Category, updated.Category)
	assert.Equal(t, rec.Active, updated.Active)
	assert.Equal(t, 2, bus.count(domain.EventSiteDataUpdated))
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupCatalog(t)

	_, err := svc.Update(context.Background(), "missing", domain.ServicePatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Update_RejectsIDChange(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	otherID := "different"
	_, err = svc.Update(ctx, rec.ID, domain.ServicePatch{ID: &otherID})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// --- Delete ---

func TestCatalogService_Delete_RemovesRecordPreservingOrder(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"A", "B", "C"} {
		in := validInput()
		in.Title = title
		rec, err := svc.Add(ctx, in)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	require.NoError(t, svc.Delete(ctx, ids[1]))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[0], records[0].ID)
	assert.Equal(t, ids[2], records[1].ID)
}

func TestCatalogService_Delete_NotFoundLeavesCatalogUnchanged(t *testing.T) {
	svc, _, bus := setupCatalog(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, validInput())
	require.NoError(t, err)
	published := bus.count(domain.EventSiteDataUpdated)

	err = svc.Delete(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	records, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, records, 1)
	assert.Equal(t, published, bus.count(domain.EventSiteDataUpdated))
}

// --- DeleteBatch ---

func TestCatalogService_DeleteBatch_SingleWriteAndNotification(t *testing.T) {
	svc, _, bus := setupCatalog(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ {
		rec, err := svc.Add(ctx, validInput())
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	before := bus.count(domain.EventSiteDataUpdated)

	removed, err := svc.DeleteBatch(ctx, []string{ids[0], ids[2], "missing"}, true)
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	records, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, records, 2)
	assert.Equal(t, ids[1], records[0].ID)
	assert.Equal(t, ids[3], records[1].ID)
	// One notification for the whole batch.
	assert.Equal(t, before+1, bus.count(domain.EventSiteDataUpdated))
}

func TestCatalogService_DeleteBatch_RequiresConfirmation(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.DeleteBatch(ctx, []string{rec.ID}, false)

	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	records, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, records, 1)
}

func TestCatalogService_DeleteBatch_NoMatches(t *testing.T) {
	svc, _, bus := setupCatalog(t)

	removed, err := svc.DeleteBatch(context.Background(), []string{"x", "y"}, true)

	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Zero(t, bus.count(domain.EventSiteDataUpdated))
}

// --- ToggleActive ---

func TestCatalogService_ToggleActive(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, validInput())
	require.NoError(t, err)
	require.True(t, rec.Active)

	toggled, err := svc.ToggleActive(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = svc.ToggleActive(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestCatalogService_ToggleActive_NotFound(t *testing.T) {
	svc, _, _ := setupCatalog(t)

	_, err := svc.ToggleActive(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Query ---

func TestCatalogService_Query(t *testing.T) {
	svc, _, _ := setupCatalog(t)
	ctx := context.Background()

	for i, title := range []string{"Web", "Mobile", "Cloud"} {
		in := validInput()
		in.Title = title
		in.Active = i != 1
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	result, err := svc.Query(ctx, domain.QuerySpec{
		StatusFilter: domain.StatusActive,
		Page:         1,
		PageSize:     10,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

// --- Corrupt storage fallback ---

func TestCatalogService_List_CorruptPayloadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	siteStore := memory.NewSiteStore()
	require.NoError(t, siteStore.Save(ctx, domain.Site{ID: "site-1"}))
	require.NoError(t, siteStore.SetActive(ctx, "site-1"))

	svc := NewCatalogService(&corruptCatalogStore{}, siteStore, nil)

	records, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, records)
}

// --- Nil guards ---

func TestCatalogService_NilStore(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Add(ctx, validInput())
	assert.True(t, errors.Is(err, domain.ErrNotImplemented))
}
