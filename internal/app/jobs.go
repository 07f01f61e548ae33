package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/greenstall/greenmarket/internal/domain"
	"github.com/greenstall/greenmarket/internal/imagestore"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedSweepOrphanUploadsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}
}

// SchedSystemMonitorTask logs host cpu and memory pressure.
func (a *Application) SchedSystemMonitorTask() {
	percents, err := cpu.Percent(time.Second, false)
	if err != nil || len(percents) == 0 {
		return
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	zap.L().Debug("system monitor",
		zap.Float64("cpu_percent", percents[0]),
		zap.Float64("mem_percent", vm.UsedPercent))
}

// SchedSweepOrphanUploadsTask removes uploaded images no longer referenced
// by any product or farmer record. Files younger than a day are kept, so a
// just-uploaded image cannot be swept before its record lands.
func (a *Application) SchedSweepOrphanUploadsTask() {
	store := imagestore.New(a.appConfig.GetUploadDir())
	names, err := store.List()
	if err != nil {
		return
	}

	referenced := make(map[string]bool)
	var products []domain.Product
	if err := a.gormDB.Select("image").Find(&products).Error; err != nil {
		return
	}
	for _, p := range products {
		referenced[p.Image] = true
	}
	var fusers []domain.FUser
	if err := a.gormDB.Select("image").Find(&fusers).Error; err != nil {
		return
	}
	for _, f := range fusers {
		referenced[f.Image] = true
	}

	removed := 0
	for _, name := range names {
		if referenced[name] {
			continue
		}
		if fresh(name, 24*time.Hour) {
			continue
		}
		if err := store.Remove(name); err == nil {
			removed++
		}
	}
	if removed > 0 {
		zap.L().Info("swept orphan uploads", zap.Int("count", removed))
	}
}

// fresh reports whether a timestamp-named upload is younger than d.
func fresh(name string, d time.Duration) bool {
	ts := imagestore.TimestampOf(name)
	if ts.IsZero() {
		return false
	}
	return time.Since(ts) < d
}
