package localstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DragosAvidal/ADworktracker/internal/model"
)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "activities.json"))
	require.NoError(t, err)
	require.Empty(t, store.All())
}

func TestAddAssignsIDsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")

	store, err := Open(path)
	require.NoError(t, err)

	first, err := store.Add(model.Activity{
		Date:   model.NewDate(2024, time.January, 10),
		Client: "Acme",
		Hours:  4,
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)

	second, err := store.Add(model.Activity{
		Date:   model.NewDate(2024, time.January, 11),
		Client: "Globex",
		Hours:  2,
	})
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Len(t, reopened.All(), 2)
}

func TestAllOrdersByDateDescending(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "activities.json"))
	require.NoError(t, err)

	for _, day := range []int{10, 12, 11} {
		_, err := store.Add(model.Activity{
			Date:  model.NewDate(2024, time.January, day),
			Hours: 1,
		})
		require.NoError(t, err)
	}

	all := store.All()
	require.Equal(t, "2024-01-12", all[0].Date.String())
	require.Equal(t, "2024-01-11", all[1].Date.String())
	require.Equal(t, "2024-01-10", all[2].Date.String())
}

func TestSearch(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "activities.json"))
	require.NoError(t, err)

	_, err = store.Add(model.Activity{Date: model.NewDate(2024, time.January, 10), Client: "Acme", Hours: 4})
	require.NoError(t, err)
	_, err = store.Add(model.Activity{Date: model.NewDate(2024, time.January, 11), Client: "Globex", Hours: 2})
	require.NoError(t, err)

	byDate := store.SearchByDate(model.NewDate(2024, time.January, 10))
	require.Len(t, byDate, 1)
	require.Equal(t, "Acme", byDate[0].Client)

	byClient := store.SearchByClient("Globex")
	require.Len(t, byClient, 1)
	require.Equal(t, "2024-01-11", byClient[0].Date.String())

	require.Empty(t, store.SearchByClient("Initech"))
}
