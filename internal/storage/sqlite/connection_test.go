package sqlite

import (
	"os"
	"testing"
	"time"

	"payguard-risk-system/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection(t *testing.T) {
	tmpFile := "test_conn_" + time.Now().Format("20060102150405.000000000") + ".db"
	defer func() {
		os.Remove(tmpFile)
		os.Remove(tmpFile + "-wal")
		os.Remove(tmpFile + "-shm")
	}()

	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: tmpFile,
		},
	}

	db, err := NewConnection(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NotNil(t, db.DB)

	// Схема создана при подключении
	var name string
	err = db.DB.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='decisions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "decisions", name)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.True(t, isRetryableError(errString("database is locked")))
	assert.True(t, isRetryableError(errString("SQLITE_BUSY: database is busy")))
	assert.False(t, isRetryableError(errString("UNIQUE constraint failed")))
}

type errString string

func (e errString) Error() string { return string(e) }
