package services

import (
	"context"
	"sync"
	"time"

	"lingo-gate/internal/models"
	"lingo-gate/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// cleanupInterval is how often expired request logs are swept.
const cleanupInterval = 2 * time.Hour

// LogCleanupService handles cleanup of expired request logs.
type LogCleanupService struct {
	db            *gorm.DB
	retentionDays int
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

// NewLogCleanupService creates a new log cleanup service.
func NewLogCleanupService(db *gorm.DB) *LogCleanupService {
	return &LogCleanupService{
		db:            db,
		retentionDays: utils.ParseInteger(utils.GetEnvOrDefault("REQUEST_LOG_RETENTION_DAYS", "7"), 7),
		stopCh:        make(chan struct{}),
	}
}

// Start starts the log cleanup service.
func (s *LogCleanupService) Start() {
	s.wg.Add(1)
	go s.run()
	logrus.Debug("Log cleanup service started")
}

// Stop stops the log cleanup service gracefully.
func (s *LogCleanupService) Stop(ctx context.Context) {
	close(s.stopCh)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("LogCleanupService stopped gracefully.")
	case <-ctx.Done():
		logrus.Warn("LogCleanupService stop timed out.")
	}
}

func (s *LogCleanupService) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	// Initial cleanup on start
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup removes request logs older than the retention window.
// A retention of 0 disables cleanup entirely.
func (s *LogCleanupService) cleanup() {
	if s.db == nil || s.retentionDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	result := s.db.Where("timestamp < ?", cutoff).Delete(&models.RequestLog{})
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Failed to clean up expired request logs")
		return
	}
	if result.RowsAffected > 0 {
		logrus.Infof("Cleaned up %d expired request logs", result.RowsAffected)
	}
}
