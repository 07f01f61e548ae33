package app

import (
	"sync"
	"time"

	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/greenstall/greenmarket/internal/domain"
)

// SettingsManager reads runtime settings from the sys_config table with a
// short read-through cache. Values are stored as strings and converted on
// access.
type SettingsManager struct {
	db  *gorm.DB
	mu  sync.RWMutex
	val map[string]cachedSetting
	ttl time.Duration
}

type cachedSetting struct {
	value   string
	expires time.Time
}

func NewSettingsManager(db *gorm.DB) *SettingsManager {
	return &SettingsManager{
		db:  db,
		val: make(map[string]cachedSetting),
		ttl: 30 * time.Second,
	}
}

func (m *SettingsManager) get(category, name string) string {
	key := category + "." + name
	m.mu.RLock()
	if c, ok := m.val[key]; ok && time.Now().Before(c.expires) {
		m.mu.RUnlock()
		return c.value
	}
	m.mu.RUnlock()

	var cfg domain.SysConfig
	value := ""
	if err := m.db.Where("type = ? AND name = ?", category, name).First(&cfg).Error; err == nil {
		value = cfg.Value
	}
	m.mu.Lock()
	m.val[key] = cachedSetting{value: value, expires: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return value
}

func (m *SettingsManager) GetString(category, name string) string {
	return m.get(category, name)
}

func (m *SettingsManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(m.get(category, name))
}

func (m *SettingsManager) GetBool(category, name string) bool {
	return cast.ToBool(m.get(category, name))
}

// Set writes a setting and drops the cached value.
func (m *SettingsManager) Set(category, name, value string) error {
	var cfg domain.SysConfig
	err := m.db.Where("type = ? AND name = ?", category, name).First(&cfg).Error
	if err != nil {
		err = m.db.Create(&domain.SysConfig{
			Type:  category,
			Name:  name,
			Value: value,
		}).Error
	} else {
		err = m.db.Model(&cfg).Update("value", value).Error
	}
	if err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.val, category+"."+name)
	m.mu.Unlock()
	return nil
}
