package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"stream-catalog/internal/domain"
)

type mockPreferenceRepo struct {
	prefs map[domain.Preference]bool
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{prefs: make(map[domain.Preference]bool)}
}

func (m *mockPreferenceRepo) Add(_ context.Context, pref domain.Preference) error {
	m.prefs[pref] = true
	return nil
}

func (m *mockPreferenceRepo) ListByProfileID(_ context.Context, profileID string) ([]domain.Preference, error) {
	var out []domain.Preference
	for pref := range m.prefs {
		if pref.ProfileID == profileID {
			out = append(out, pref)
		}
	}
	return out, nil
}

func (m *mockPreferenceRepo) Remove(_ context.Context, profileID string, genreID int) error {
	delete(m.prefs, domain.Preference{ProfileID: profileID, GenreID: genreID})
	return nil
}

type mockHistoryRepo struct {
	entries map[string]domain.WatchHistoryEntry
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{entries: make(map[string]domain.WatchHistoryEntry)}
}

func (m *mockHistoryRepo) Upsert(_ context.Context, entry domain.WatchHistoryEntry) error {
	m.entries[entry.ProfileID+"|"+entry.WatchableID] = entry
	return nil
}

func (m *mockHistoryRepo) ListByProfileID(_ context.Context, profileID string) ([]domain.WatchHistoryEntry, error) {
	var out []domain.WatchHistoryEntry
	for _, e := range m.entries {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) UpdatePosition(_ context.Context, profileID, watchableID string, timeStopped int) (domain.WatchHistoryEntry, error) {
	key := profileID + "|" + watchableID
	entry, ok := m.entries[key]
	if !ok {
		return domain.WatchHistoryEntry{}, pgx.ErrNoRows
	}
	entry.TimeStopped = timeStopped
	m.entries[key] = entry
	return entry, nil
}

func (m *mockHistoryRepo) Delete(_ context.Context, profileID, watchableID string) error {
	key := profileID + "|" + watchableID
	if _, ok := m.entries[key]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.entries, key)
	return nil
}

type mockWatchlistRepo struct {
	entries map[string]domain.WatchlistEntry
}

func newMockWatchlistRepo() *mockWatchlistRepo {
	return &mockWatchlistRepo{entries: make(map[string]domain.WatchlistEntry)}
}

func (m *mockWatchlistRepo) Add(_ context.Context, entry domain.WatchlistEntry) error {
	key := entry.ProfileID + "|" + entry.WatchableID
	if _, ok := m.entries[key]; ok {
		return nil
	}
	m.entries[key] = entry
	return nil
}

func (m *mockWatchlistRepo) ListByProfileID(_ context.Context, profileID string) ([]domain.WatchlistEntry, error) {
	var out []domain.WatchlistEntry
	for _, e := range m.entries {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockWatchlistRepo) Remove(_ context.Context, profileID, watchableID string) error {
	delete(m.entries, profileID+"|"+watchableID)
	return nil
}

func newTestActivityService() (*ActivityService, *mockPreferenceRepo, *mockHistoryRepo, *mockWatchlistRepo) {
	prefs := newMockPreferenceRepo()
	history := newMockHistoryRepo()
	watchlist := newMockWatchlistRepo()
	return NewActivityService(zap.NewNop(), prefs, history, watchlist), prefs, history, watchlist
}

func TestAddPreferenceIdempotent(t *testing.T) {
	svc, prefs, _, _ := newTestActivityService()
	ctx := context.Background()

	if err := svc.AddPreference(ctx, "profile-1", 3); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddPreference(ctx, "profile-1", 3); err != nil {
		t.Fatalf("repeated add should not fail: %v", err)
	}
	if len(prefs.prefs) != 1 {
		t.Fatalf("expected a single preference, got %d", len(prefs.prefs))
	}

	listed, err := svc.ListPreferences(ctx, "profile-1")
	if err != nil || len(listed) != 1 || listed[0].GenreID != 3 {
		t.Fatalf("list: %v %+v", err, listed)
	}

	if err := svc.RemovePreference(ctx, "profile-1", 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(prefs.prefs) != 0 {
		t.Fatalf("preference not removed")
	}
}

func TestAddPreferenceInvalidInput(t *testing.T) {
	svc, _, _, _ := newTestActivityService()

	if err := svc.AddPreference(context.Background(), "", 1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty profile, got %v", err)
	}
	if err := svc.AddPreference(context.Background(), "profile-1", 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for zero genre, got %v", err)
	}
}

func TestRecordHistoryUpserts(t *testing.T) {
	svc, _, history, _ := newTestActivityService()
	ctx := context.Background()

	if _, err := svc.RecordHistory(ctx, "profile-1", "watchable-1", 120); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Volver a registrar el mismo par pisa la posicion, no duplica.
	if _, err := svc.RecordHistory(ctx, "profile-1", "watchable-1", 300); err != nil {
		t.Fatalf("re-record: %v", err)
	}
	if len(history.entries) != 1 {
		t.Fatalf("expected a single entry, got %d", len(history.entries))
	}

	listed, err := svc.ListHistory(ctx, "profile-1")
	if err != nil || len(listed) != 1 || listed[0].TimeStopped != 300 {
		t.Fatalf("list: %v %+v", err, listed)
	}
}

func TestUpdateHistoryPositionNotFound(t *testing.T) {
	svc, _, _, _ := newTestActivityService()

	_, err := svc.UpdateHistoryPosition(context.Background(), "profile-1", "watchable-1", 60)
	if err != ErrHistoryEntryNotFound {
		t.Fatalf("expected ErrHistoryEntryNotFound, got %v", err)
	}
}

func TestRecordHistoryInvalidInput(t *testing.T) {
	svc, _, _, _ := newTestActivityService()

	if _, err := svc.RecordHistory(context.Background(), "profile-1", "watchable-1", -1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative position, got %v", err)
	}
	if _, err := svc.RecordHistory(context.Background(), "", "watchable-1", 10); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty profile, got %v", err)
	}
}

func TestWatchlistAddListRemove(t *testing.T) {
	svc, _, _, watchlist := newTestActivityService()
	ctx := context.Background()

	if err := svc.AddToWatchlist(ctx, "profile-1", "watchable-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddToWatchlist(ctx, "profile-1", "watchable-1"); err != nil {
		t.Fatalf("repeated add should not fail: %v", err)
	}
	if len(watchlist.entries) != 1 {
		t.Fatalf("expected a single watchlist entry, got %d", len(watchlist.entries))
	}

	listed, err := svc.ListWatchlist(ctx, "profile-1")
	if err != nil || len(listed) != 1 || listed[0].WatchableID != "watchable-1" {
		t.Fatalf("list: %v %+v", err, listed)
	}

	if err := svc.RemoveFromWatchlist(ctx, "profile-1", "watchable-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(watchlist.entries) != 0 {
		t.Fatalf("entry not removed")
	}
}
