package database_test

import (
	"bytes"
	"testing"

	"toko-admin/internal/database"
	"toko-admin/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	db, err := database.Open("sqlite", database.MemoryDSN(t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	for name, dsn := range map[string]string{
		"memory": database.MemoryDSN(t.Name()),
		"file":   t.TempDir() + "/toko.db",
	} {
		t.Run(name, func(t *testing.T) {
			db, err := database.Open("sqlite", dsn)
			require.NoError(t, err)
			require.NoError(t, database.Migrate(db))

			var enabled int
			require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
			assert.Equal(t, 1, enabled)

			err = db.Create(&models.Category{ID: "c1", StoreID: "s1", BannerID: "missing", Name: "Sepatu"}).Error
			require.Error(t, err)
			assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
		})
	}
}

func TestOpen_LogsThroughLogrus(t *testing.T) {
	var buf bytes.Buffer
	orig := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(orig) })

	db, err := database.Open("sqlite", database.MemoryDSN(t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	var user models.User
	err = db.First(&user, "username = ?", "nobody").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "record not found")

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), "component=gorm")
	assert.Contains(t, buf.String(), "no_such_table")
}
