package app

import (
	"go.uber.org/zap"

	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/pkg/common"
)

type settingSchema struct {
	Category    string
	Name        string
	Default     string
	Description string
}

var defaultSettings = []settingSchema{
	{"carousel", "interval_seconds", "5", "Seconds between landing-view image reshuffles"},
	{"carousel", "image_count", "6", "Number of images shown per reshuffle"},
	{"catalog", "demo_seed", "enabled", "Seed demo produce listings when the catalog is empty"},
}

// checkSettings initializes missing sys_config rows with their defaults.
func (a *Application) checkSettings() {
	for sortid, schema := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", schema.Category, schema.Name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				ID:     common.UUIDint64(),
				Sort:   sortid,
				Type:   schema.Category,
				Name:   schema.Name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized config",
				zap.String("key", schema.Category+"."+schema.Name),
				zap.String("default", schema.Default))
		}
	}
}

// checkDemoCatalog seeds a handful of produce listings on first boot so the
// browse screen is not empty. Skipped when disabled or once any product
// exists.
func (a *Application) checkDemoCatalog() {
	if a.settings.GetString("catalog", "demo_seed") == common.DISABLED {
		return
	}
	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return
	}

	demoProducts := []domain.Product{
		{Name: "tomato", Quantity: "25 kg", Price: "₹40/kg", Image: "demo-tomato.jpg",
			Description: "Farm fresh tomatoes", Email: "demo@greenmarket.in",
			Upi: "demo@upi", Contact: "9000000001", Location: "Coimbatore"},
		{Name: "onion", Quantity: "50 kg", Price: "₹32/kg", Image: "demo-onion.jpg",
			Description: "Red onions, medium size", Email: "demo@greenmarket.in",
			Upi: "demo@upi", Contact: "9000000001", Location: "Coimbatore"},
		{Name: "spinach", Quantity: "10 bundles", Price: "₹15/bundle", Image: "demo-spinach.jpg",
			Description: "Picked this morning", Email: "demo@greenmarket.in",
			Upi: "demo@upi", Contact: "9000000001", Location: "Coimbatore"},
	}

	for _, p := range demoProducts {
		p.ID = common.UUID()
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create demo product", zap.String("name", p.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized demo product", zap.String("name", p.Name))
		}
	}
}
