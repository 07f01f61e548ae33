package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/greenstall/greenmarket/config"
	"github.com/greenstall/greenmarket/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func TestSettingsManager(t *testing.T) {
	db := newTestDB(t)
	m := NewSettingsManager(db)

	assert.Equal(t, "", m.GetString("carousel", "interval_seconds"))

	require.NoError(t, m.Set("carousel", "interval_seconds", "7"))
	assert.Equal(t, "7", m.GetString("carousel", "interval_seconds"))
	assert.EqualValues(t, 7, m.GetInt64("carousel", "interval_seconds"))

	require.NoError(t, m.Set("catalog", "demo_seed", "true"))
	assert.True(t, m.GetBool("catalog", "demo_seed"))

	// overwrite drops the cached value
	require.NoError(t, m.Set("carousel", "interval_seconds", "9"))
	assert.EqualValues(t, 9, m.GetInt64("carousel", "interval_seconds"))
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := *config.DefaultAppConfig
	cfg.System.Workdir = t.TempDir()
	db := newTestDB(t)
	return &Application{
		appConfig: &cfg,
		gormDB:    db,
		settings:  NewSettingsManager(db),
	}
}

func TestCheckSettingsSeedsDefaults(t *testing.T) {
	a := newTestApplication(t)
	a.checkSettings()

	var count int64
	a.gormDB.Model(&domain.SysConfig{}).Count(&count)
	assert.EqualValues(t, len(defaultSettings), count)

	// idempotent
	a.checkSettings()
	a.gormDB.Model(&domain.SysConfig{}).Count(&count)
	assert.EqualValues(t, len(defaultSettings), count)

	assert.EqualValues(t, 5, a.GetSettingsInt64Value("carousel", "interval_seconds"))
	assert.EqualValues(t, 6, a.GetSettingsInt64Value("carousel", "image_count"))
}

func TestCheckDemoCatalogSeedsOnce(t *testing.T) {
	a := newTestApplication(t)
	a.checkDemoCatalog()

	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	assert.EqualValues(t, 3, count)

	a.checkDemoCatalog()
	a.gormDB.Model(&domain.Product{}).Count(&count)
	assert.EqualValues(t, 3, count)
}

func TestCheckDemoCatalogDisabled(t *testing.T) {
	a := newTestApplication(t)
	require.NoError(t, a.settings.Set("catalog", "demo_seed", "disabled"))
	a.checkDemoCatalog()

	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
