package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// artifactMaxAge is how long export workbooks and uploaded spreadsheets
// stay on disk before the daily sweep removes them.
const artifactMaxAge = 24 * time.Hour

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@daily", func() {
		a.SchedSweepArtifacts()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSweepArtifacts removes stale export workbooks and uploaded
// spreadsheets from the workdir. Image assets are never touched, they
// back live product records.
func (a *Application) SchedSweepArtifacts() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	cutoff := time.Now().Add(-artifactMaxAge)
	for _, dir := range []string{a.appConfig.GetExportsDir(), a.appConfig.GetUploadsDir()} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				zap.L().Warn("failed to remove stale artifact", zap.String("path", path), zap.Error(err))
			} else {
				zap.L().Info("removed stale artifact", zap.String("path", path))
			}
		}
	}
}
