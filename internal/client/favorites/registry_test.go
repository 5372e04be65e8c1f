package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/ekozlova/artshop/internal/client/bus"
	"github.com/ekozlova/artshop/internal/client/models"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository; SaveErr makes Replace fail.
type memRepo struct {
	ids     []string
	SaveErr error
	Saves   int
}

func (m *memRepo) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), m.ids...), nil
}

func (m *memRepo) Replace(ctx context.Context, ids []string) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ids = append([]string(nil), ids...)
	return nil
}

func newRegistry(t *testing.T, repo *memRepo) *Registry {
	t.Helper()
	r, err := NewRegistry(context.Background(), repo, bus.NewBroadcaster())
	require.NoError(t, err)
	return r
}

func TestToggle_PersistsFullSetSynchronously(t *testing.T) {
	repo := &memRepo{}
	r := newRegistry(t, repo)
	ctx := context.Background()

	require.NoError(t, r.Toggle(ctx, "p1"))
	require.True(t, r.Contains("p1"))
	require.Equal(t, []string{"p1"}, repo.ids)

	require.NoError(t, r.Toggle(ctx, "p2"))
	require.ElementsMatch(t, []string{"p1", "p2"}, repo.ids)

	require.NoError(t, r.Toggle(ctx, "p1"))
	require.False(t, r.Contains("p1"))
	require.Equal(t, []string{"p2"}, repo.ids)
	require.Equal(t, 3, repo.Saves)
}

func TestToggle_PersistFailureLeavesSetUntouched(t *testing.T) {
	repo := &memRepo{ids: []string{"p1"}}
	r := newRegistry(t, repo)

	repo.SaveErr = errors.New("disk full")
	require.Error(t, r.Toggle(context.Background(), "p2"))

	require.True(t, r.Contains("p1"))
	require.False(t, r.Contains("p2"))
	require.Equal(t, []string{"p1"}, repo.ids)
}

func TestToggle_AnnouncesChange(t *testing.T) {
	repo := &memRepo{}
	changes := bus.NewBroadcaster()
	r, err := NewRegistry(context.Background(), repo, changes)
	require.NoError(t, err)

	published := 0
	changes.Subscribe(func() { published++ })

	require.NoError(t, r.Toggle(context.Background(), "p1"))
	require.Equal(t, 1, published)

	repo.SaveErr = errors.New("disk full")
	_ = r.Toggle(context.Background(), "p2")
	require.Equal(t, 1, published, "failed toggle must not publish")
}

func TestNewRegistry_LoadsPersistedSet(t *testing.T) {
	repo := &memRepo{ids: []string{"p3", "p7"}}
	r := newRegistry(t, repo)

	require.True(t, r.Contains("p3"))
	require.True(t, r.Contains("p7"))
	require.False(t, r.Contains("p1"))
	require.Equal(t, 2, r.Len())
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	repo := &memRepo{ids: []string{"p4", "p1"}}
	r := newRegistry(t, repo)

	products := []models.Product{
		{Id: "p1", Name: "Sunflowers"},
		{Id: "p2", Name: "Water Lilies"},
		{Id: "p3", Name: "The Kiss"},
		{Id: "p4", Name: "Starry Night"},
	}

	got := r.Filter(products)
	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].Id)
	require.Equal(t, "p4", got[1].Id)

	require.Empty(t, r.Filter(nil))
}
