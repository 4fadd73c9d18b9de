package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landledger/database"
	"landledger/pkg/ledgererr"
	measRepoImp "landledger/pkg/measurement/repositoryImp"
	svc "landledger/pkg/measurement/service"
)

func testService(t *testing.T) svc.MeasurementService {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(measRepoImp.New(db))
}

func valid() svc.NewMeasurement {
	return svc.NewMeasurement{
		Acr: 2.5, PricePerAcre: 19000, Total: 47500,
		OwnerName: "Sunil", DriverName: "Kamal", BrokerName: "Nimal",
	}
}

func TestCreateValidInput(t *testing.T) {
	s := testService(t)

	m, err := s.Create(valid())
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, 47500.0, m.Total)
}

func TestCreateRejectsNonPositiveAcr(t *testing.T) {
	s := testService(t)

	in := valid()
	in.Acr, in.Total = 0, 0
	_, err := s.Create(in)
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))

	in = valid()
	in.Acr, in.Total = -1, -19000
	_, err = s.Create(in)
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))
}

func TestCreateRejectsMismatchedTotal(t *testing.T) {
	s := testService(t)

	in := valid()
	in.Total = 50000
	_, err := s.Create(in)
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))
}

func TestCreateRejectsMissingOwner(t *testing.T) {
	s := testService(t)

	in := valid()
	in.OwnerName = ""
	_, err := s.Create(in)
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))
}

func TestCreateKeepsBackdatedSurveyDate(t *testing.T) {
	s := testService(t)

	when := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	in := valid()
	in.CreatedAt = &when

	m, err := s.Create(in)
	require.NoError(t, err)

	got, err := s.Get(m.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(when))
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	s := testService(t)

	_, err := s.Update(42, valid())
	assert.True(t, errors.Is(err, ledgererr.ErrNotFound))
}
