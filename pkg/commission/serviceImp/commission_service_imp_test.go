package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"landledger/database"
	"landledger/entities"
	svc "landledger/pkg/commission/service"
	measRepoImp "landledger/pkg/measurement/repositoryImp"
	profRepoImp "landledger/pkg/profile/repositoryImp"
)

func testService(t *testing.T) (svc.CommissionService, *gorm.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(measRepoImp.New(db), profRepoImp.New(db)), db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, profRepoImp.New(db).Insert(&entities.Profile{
		FarmName:         "Green Field",
		PricePerAcre:     19000,
		DriverCommission: 10,
		BrokerCommission: 5000,
	}))
	require.NoError(t, measRepoImp.New(db).Create(&entities.Measurement{
		Acr: 2.5, PricePerAcre: 19000, Total: 47500,
		OwnerName: "Sunil", DriverName: "Kamal", BrokerName: "Nimal",
	}))
}

func TestDriverCommissionIsPercentOfTotal(t *testing.T) {
	s, db := testService(t)
	seed(t, db)

	rows, err := s.PerDriver("Kamal")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 4750.0, rows[0].CommissionAmount, 1e-9) // 10% of 47500
	assert.Equal(t, "Kamal", rows[0].DriverName)
}

func TestBrokerCommissionIsFlatPerAcre(t *testing.T) {
	s, db := testService(t)
	seed(t, db)

	rows, err := s.PerBroker("Nimal")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 12500.0, rows[0].CommissionAmount, 1e-9) // 2.5 acr * 5000
	assert.Equal(t, "Nimal", rows[0].BrokerName)
}

func TestFilterExcludesOtherNames(t *testing.T) {
	s, db := testService(t)
	seed(t, db)

	rows, err := s.PerDriver("Somebody Else")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNoProfileMeansZeroCommission(t *testing.T) {
	s, db := testService(t)
	require.NoError(t, measRepoImp.New(db).Create(&entities.Measurement{
		Acr: 2, PricePerAcre: 100, Total: 200, OwnerName: "Sunil", DriverName: "Kamal",
	}))

	rows, err := s.PerDriver("")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].CommissionAmount)
}

// Commission rates are not frozen at survey time: editing the profile rate
// changes every historical report. Long-standing behavior, kept.
func TestRateChangeAppliesRetroactively(t *testing.T) {
	s, db := testService(t)
	seed(t, db)

	profiles := profRepoImp.New(db)
	p, err := profiles.First()
	require.NoError(t, err)
	p.DriverCommission = 20
	require.NoError(t, profiles.Update(p.ID, p))

	rows, err := s.PerDriver("Kamal")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 9500.0, rows[0].CommissionAmount, 1e-9) // 20% of 47500
}
