package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landledger/database"
	driverRepoImp "landledger/pkg/driver/repositoryImp"
	svc "landledger/pkg/driver/service"
	"landledger/pkg/ledgererr"
)

func testService(t *testing.T) svc.DriverService {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	return New(driverRepoImp.New(db))
}

func TestAddRejectsCaseInsensitiveDuplicate(t *testing.T) {
	s := testService(t)

	_, err := s.Add("Kamal")
	require.NoError(t, err)

	_, err = s.Add("kamal")
	assert.True(t, errors.Is(err, ledgererr.ErrDuplicateName))

	_, err = s.Add("KAMAL")
	assert.True(t, errors.Is(err, ledgererr.ErrDuplicateName))
}

func TestAddRejectsBlankName(t *testing.T) {
	s := testService(t)

	_, err := s.Add("   ")
	assert.True(t, errors.Is(err, ledgererr.ErrValidation))
}

func TestRenameKeepsOwnName(t *testing.T) {
	s := testService(t)

	d, err := s.Add("Kamal")
	require.NoError(t, err)

	// renaming to the same name must not trip the duplicate guard
	require.NoError(t, s.Rename(d.ID, "Kamal"))
}
