package client

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempLedgerPath(t *testing.T) string {
	dir, err := ioutil.TempDir("", "rescuemap-ledger")
	if err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "ledger.json")
}

func TestLedgerRecordOwnsForget(t *testing.T) {
	path := tempLedgerPath(t)

	ledger, err := OpenLedger(path)
	assert.NoError(t, err)

	assert.False(t, ledger.Owns(42))

	assert.NoError(t, ledger.Record(42))
	assert.True(t, ledger.Owns(42))

	// recording twice keeps a single entry
	assert.NoError(t, ledger.Record(42))

	assert.NoError(t, ledger.Forget(42))
	assert.False(t, ledger.Owns(42))

	// forgetting an unknown ID is a no-op
	assert.NoError(t, ledger.Forget(42))
}

func TestLedgerSurvivesReopen(t *testing.T) {
	path := tempLedgerPath(t)

	ledger, err := OpenLedger(path)
	assert.NoError(t, err)
	assert.NoError(t, ledger.Record(7))
	assert.NoError(t, ledger.Record(11))
	deviceID := ledger.DeviceID()
	assert.NotEmpty(t, deviceID)

	reopened, err := OpenLedger(path)
	assert.NoError(t, err)
	assert.True(t, reopened.Owns(7))
	assert.True(t, reopened.Owns(11))
	assert.False(t, reopened.Owns(13))
	assert.Equal(t, deviceID, reopened.DeviceID(), "device identity must be stable across reloads")
}

func TestLedgerCorruptFileTreatedAsEmpty(t *testing.T) {
	path := tempLedgerPath(t)
	assert.NoError(t, ioutil.WriteFile(path, []byte("{not json"), 0600))

	ledger, err := OpenLedger(path)
	assert.NoError(t, err)
	assert.False(t, ledger.Owns(42))
	assert.NotEmpty(t, ledger.DeviceID())
}

func TestLedgerClearKeepsIdentity(t *testing.T) {
	path := tempLedgerPath(t)

	ledger, err := OpenLedger(path)
	assert.NoError(t, err)
	assert.NoError(t, ledger.Record(1))
	assert.NoError(t, ledger.Record(2))
	deviceID := ledger.DeviceID()

	assert.NoError(t, ledger.Clear())
	assert.False(t, ledger.Owns(1))
	assert.False(t, ledger.Owns(2))
	assert.Equal(t, deviceID, ledger.DeviceID())
}
