package entitystore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekuzmina/shopfront/internal/common"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/kv/memkv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
)

// ---- helpers ----

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

func seedWidgets() []widget {
	return []widget{
		{ID: "1", Name: "alpha", Color: "red", Count: 3},
		{ID: "2", Name: "beta", Color: "blue", Count: 7},
	}
}

func widgetConfig() Config[widget] {
	return Config[widget]{
		Name:       "widgets",
		StorageKey: "widgets_data",
		Seed:       seedWidgets,
		ID:         func(w widget) string { return w.ID },
		AssignID:   func(w *widget, id string) { w.ID = id },
		SearchText: func(w widget) []string { return []string{w.Name, w.Color} },
		Sleeper:    latency.None{},
	}
}

func newStore(t *testing.T, medium kv.Store) *Store[widget] {
	t.Helper()
	durable := kv.NewDurable(medium, logging.NewNopLogger())
	return New(widgetConfig(), durable, logging.NewNopLogger())
}

// ---- TESTS ----

func TestList_SeedsFromFixturesWhenStorageEmpty(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, seedWidgets(), got)

	// A second read without mutation returns the same set.
	again, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestList_SeedsFromFixturesWhenStorageMalformed(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()
	require.NoError(t, medium.Set(ctx, "widgets_data", "{not json"))

	s := newStore(t, medium)
	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, seedWidgets(), got)
}

func TestList_AdoptsStoredCollectionVerbatim(t *testing.T) {
	ctx := context.Background()
	stored := []widget{{ID: "42", Name: "gamma", Color: "green", Count: 1}}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	medium := memkv.New()
	require.NoError(t, medium.Set(ctx, "widgets_data", string(data)))

	s := newStore(t, medium)
	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestCreate_RoundTripsThroughFreshStore(t *testing.T) {
	ctx := context.Background()
	medium := memkv.New()

	s := newStore(t, medium)
	created, err := s.Create(ctx, widget{Name: "delta", Color: "yellow", Count: 9})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// A fresh store instance reading the same durable key sees the record.
	fresh := newStore(t, medium)
	got, err := fresh.List(ctx)
	require.NoError(t, err)
	require.Contains(t, got, created)
}

func TestCreate_MintsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	seen := map[string]bool{}
	for _, w := range seedWidgets() {
		seen[w.ID] = true
	}
	for i := 0; i < 1000; i++ {
		created, err := s.Create(ctx, widget{Name: fmt.Sprintf("w%d", i)})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %q on create %d", created.ID, i)
		seen[created.ID] = true
	}
}

func TestUpdate_MergesOnlyRequestedFields(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	before, err := s.List(ctx)
	require.NoError(t, err)

	updated, err := s.Update(ctx, "1", func(w widget) widget {
		w.Color = "purple"
		return w
	})
	require.NoError(t, err)
	require.Equal(t, "purple", updated.Color)
	require.Equal(t, "alpha", updated.Name)
	require.Equal(t, 3, updated.Count)

	after, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	// Only the record with id "1" changed; "2" is untouched.
	require.Equal(t, before[1], after[1])
}

func TestUpdate_MissingIDFailsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	_, err := s.Update(ctx, "no-such-id", func(w widget) widget { return w })
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_RemovesAndReportsIt(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	removed, err := s.Delete(ctx, "1")
	require.NoError(t, err)
	require.True(t, removed)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)
}

func TestDelete_AbsentIDIsIdempotentNoop(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	before, err := s.List(ctx)
	require.NoError(t, err)

	removed, err := s.Delete(ctx, "no-such-id")
	require.NoError(t, err)
	require.False(t, removed)

	after, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	got, err := s.Search(ctx, "ALPH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)

	got, err = s.Search(ctx, "blue")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)

	got, err = s.Search(ctx, "nonexistent-substring")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearch_EmptyQueryReturnsFullCollection(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	got, err := s.Search(ctx, "")
	require.NoError(t, err)
	require.Equal(t, seedWidgets(), got)
}

func TestGetByID_AbsenceIsNotAnError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	w, ok, err := s.GetByID(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "beta", w.Name)

	_, ok, err = s.GetByID(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMutations_SurviveBrokenMedium(t *testing.T) {
	// A nil medium means every persist silently fails; in-memory state is
	// still the source of truth.
	ctx := context.Background()
	durable := kv.NewDurable(nil, logging.NewNopLogger())
	s := New(widgetConfig(), durable, logging.NewNopLogger())

	created, err := s.Create(ctx, widget{Name: "epsilon"})
	require.NoError(t, err)

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Contains(t, got, created)
}

func TestOperations_AbortOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newStore(t, memkv.New())

	_, err := s.List(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Create(ctx, widget{Name: "late"})
	require.ErrorIs(t, err, context.Canceled)

	// Nothing was committed.
	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, seedWidgets(), got)
}

func TestCollection_NotifiesSubscribersOnMutation(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, memkv.New())

	_, err := s.List(ctx) // force load
	require.NoError(t, err)

	ch, cancel := s.Collection().Subscribe()
	defer cancel()

	created, err := s.Create(ctx, widget{Name: "zeta"})
	require.NoError(t, err)

	snapshot := <-ch
	require.Contains(t, snapshot, created)
}
