package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")

	// the handle must actually reach the database, not just construct
	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestConnect_SQLiteFileDSN(t *testing.T) {
	db, err := Connect(t.TempDir() + "/connect_test.db")
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE connect_check (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("DROP TABLE connect_check").Error)
}
