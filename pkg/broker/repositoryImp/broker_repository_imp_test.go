package repositoryImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"landledger/database"
	"landledger/entities"
	"landledger/pkg/ledgererr"
	measRepoImp "landledger/pkg/measurement/repositoryImp"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestInsertDuplicateNameFails(t *testing.T) {
	repo := New(testDB(t))

	require.NoError(t, repo.Insert(&entities.Broker{FirstName: "Nimal"}))

	err := repo.Insert(&entities.Broker{FirstName: "Nimal"})
	assert.True(t, errors.Is(err, ledgererr.ErrDuplicateName))

	brokers, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, brokers, 1)
}

// Deleting a broker removes it from the broker table but not from the name
// snapshots on historical measurements.
func TestDeleteLeavesMeasurementHistoryAlone(t *testing.T) {
	db := testDB(t)
	brokers := New(db)
	measurements := measRepoImp.New(db)

	b := &entities.Broker{FirstName: "Nimal"}
	require.NoError(t, brokers.Insert(b))
	require.NoError(t, measurements.Create(&entities.Measurement{
		Acr: 2, PricePerAcre: 19000, Total: 38000, OwnerName: "Sunil", BrokerName: "Nimal",
	}))

	require.NoError(t, brokers.Delete(b.ID))

	listed, err := brokers.List()
	require.NoError(t, err)
	assert.Empty(t, listed)

	names, err := measurements.BrokerNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Nimal"}, names)
}

func TestDeleteMissingIDIsNotFound(t *testing.T) {
	repo := New(testDB(t))
	assert.True(t, errors.Is(repo.Delete(42), ledgererr.ErrNotFound))
}
