package server

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

const cleanupSpec = "@every 10m"

func (s *Server) startCleanup() {
	s.cron = cron.New()
	_, _ = s.cron.AddFunc(cleanupSpec, s.purgeExpired)
	s.cron.Start()
}

// purgeExpired removes persisted results older than ResultTTL.
func (s *Server) purgeExpired() {
	cutoff := time.Now().Add(-s.cfg.ResultTTL)
	removed := 0

	err := filepath.Walk(s.cfg.OutputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				s.log.Warn("purge result", "path", path, "error", err)
				return nil
			}
			removed++
		}
		return nil
	})
	if err != nil {
		s.log.Warn("purge walk", "dir", s.cfg.OutputDir, "error", err)
	}
	if removed > 0 {
		s.log.Info("purged expired results", "dir", s.cfg.OutputDir, "count", removed)
	}
}
