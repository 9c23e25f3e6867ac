package asset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/storage"
)

func TestReconcileDeletesEveryOrphan(t *testing.T) {
	store := newFakeStore()
	store.objects["profile/a.png"] = true
	store.objects["profile/b.pdf"] = true
	e := NewExecutor(store)

	report := e.Reconcile(context.Background(), []Reference{
		testRef("profile", "a.png"),
		testRef("profile", "b.pdf"),
	})

	assert.Len(t, report.Deleted, 2)
	assert.Empty(t, report.Failed)
	assert.False(t, store.has("profile", "a.png"))
	assert.False(t, store.has("profile", "b.pdf"))
}

func TestReconcileFailuresAreIndependent(t *testing.T) {
	store := newFakeStore()
	store.objects["profile/a.png"] = true
	store.objects["profile/b.pdf"] = true
	store.objects["profile/c.png"] = true
	store.failDelete["profile/b.pdf"] = true
	e := NewExecutor(store)

	report := e.Reconcile(context.Background(), []Reference{
		testRef("profile", "a.png"),
		testRef("profile", "b.pdf"),
		testRef("profile", "c.png"),
	})

	require.Len(t, report.Deleted, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "b.pdf", report.Failed[0].Ref.Key)
	assert.ErrorIs(t, report.Failed[0].Err, storage.ErrStoreUnavailable)
	assert.False(t, store.has("profile", "a.png"))
	assert.False(t, store.has("profile", "c.png"))
}

func TestReconcileNothingToDo(t *testing.T) {
	store := newFakeStore()
	e := NewExecutor(store)

	report := e.Reconcile(context.Background(), nil)

	assert.Empty(t, report.Deleted)
	assert.Empty(t, report.Failed)
	assert.Zero(t, store.deletes)
}
