package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landledger/database"
	"landledger/entities"
	"landledger/pkg/ledgererr"
	profRepoImp "landledger/pkg/profile/repositoryImp"
	svc "landledger/pkg/profile/service"
)

func testService(t *testing.T) svc.ProfileService {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(profRepoImp.New(db))
}

func TestGetOnEmptyStoreIsNotFound(t *testing.T) {
	s := testService(t)

	_, err := s.Get()
	assert.True(t, errors.Is(err, ledgererr.ErrNotFound))
}

func TestUpsertInsertsThenUpdates(t *testing.T) {
	s := testService(t)

	first, err := s.Upsert(entities.Profile{FarmName: "Green Field", PricePerAcre: 19000})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := s.Upsert(entities.Profile{FarmName: "Green Field", PricePerAcre: 21000})
	require.NoError(t, err)

	// still one logical record
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 21000.0, second.PricePerAcre)

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 21000.0, got.PricePerAcre)
}

func TestUpsertValidates(t *testing.T) {
	s := testService(t)

	_, err := s.Upsert(entities.Profile{FarmName: "", PricePerAcre: 19000})
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))

	_, err = s.Upsert(entities.Profile{FarmName: "Green Field", PricePerAcre: -1})
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))
}

func TestCurrentPricePerAcreFallsBackToDefault(t *testing.T) {
	s := testService(t)

	price, err := s.CurrentPricePerAcre()
	require.NoError(t, err)
	assert.Equal(t, float64(entities.DefaultPricePerAcre), price)

	_, err = s.Upsert(entities.Profile{FarmName: "Green Field", PricePerAcre: 22000})
	require.NoError(t, err)

	price, err = s.CurrentPricePerAcre()
	require.NoError(t, err)
	assert.Equal(t, 22000.0, price)
}
