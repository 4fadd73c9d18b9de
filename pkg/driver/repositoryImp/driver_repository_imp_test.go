package repositoryImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landledger/database"
	"landledger/entities"
	"landledger/pkg/driver/repository"
	"landledger/pkg/ledgererr"
)

func testRepo(t *testing.T) repository.DriverRepository {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(db)
}

func TestInsertDuplicateNameFails(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Insert(&entities.Driver{FirstName: "Kamal"}))

	err := repo.Insert(&entities.Driver{FirstName: "Kamal"})
	assert.True(t, errors.Is(err, ledgererr.ErrDuplicateName))

	drivers, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, drivers, 1)
}

func TestRenameToExistingNameFails(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Insert(&entities.Driver{FirstName: "Kamal"}))
	second := &entities.Driver{FirstName: "Nimal"}
	require.NoError(t, repo.Insert(second))

	err := repo.Rename(second.ID, "Kamal")
	assert.True(t, errors.Is(err, ledgererr.ErrDuplicateName))
}

func TestRenameMissingIDIsNotFound(t *testing.T) {
	repo := testRepo(t)
	assert.True(t, errors.Is(repo.Rename(42, "Kamal"), ledgererr.ErrNotFound))
}

func TestListNewestFirst(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Insert(&entities.Driver{FirstName: "Kamal"}))
	require.NoError(t, repo.Insert(&entities.Driver{FirstName: "Nimal"}))

	drivers, err := repo.List()
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "Nimal", drivers[0].FirstName)
}

func TestDriverDetailsAreFreeStanding(t *testing.T) {
	repo := testRepo(t)

	// details reference a name, not a driver row; no driver needs to exist
	require.NoError(t, repo.AddDetail(&entities.DriverDetail{
		DriverName:    "Kamal",
		ContactNumber: "0771234567",
	}))

	details, err := repo.ListDetails()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Kamal", details[0].DriverName)
}
