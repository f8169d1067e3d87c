package services

import (
	"context"
	"sync"
	"time"

	"lingo-gate/internal/models"
	"lingo-gate/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// logChannelCapacity bounds the in-memory backlog of unflushed logs.
	// Records are dropped (with a warning) rather than blocking request
	// handling when the writer falls behind.
	logChannelCapacity = 4096

	// logFlushBatchSize is the maximum number of rows per INSERT batch.
	logFlushBatchSize = 200
)

// RequestLogService buffers per-request log records and flushes them to the
// database asynchronously, keeping the write path off the request hot path.
type RequestLogService struct {
	db            *gorm.DB
	logChan       chan *models.RequestLog
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewRequestLogService creates a new RequestLogService instance.
func NewRequestLogService(db *gorm.DB) *RequestLogService {
	interval := utils.ParseDurationSeconds(utils.GetEnvOrDefault("REQUEST_LOG_FLUSH_INTERVAL", "60"), time.Minute)
	return &RequestLogService{
		db:            db,
		logChan:       make(chan *models.RequestLog, logChannelCapacity),
		flushInterval: interval,
		stopChan:      make(chan struct{}),
	}
}

// Start launches the periodic flush routine.
func (s *RequestLogService) Start() {
	s.wg.Add(1)
	go s.runLoop()
}

// Stop gracefully stops the service, flushing any buffered records.
func (s *RequestLogService) Stop(ctx context.Context) {
	close(s.stopChan)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("RequestLogService stopped gracefully.")
	case <-ctx.Done():
		logrus.Warn("RequestLogService stop timed out.")
	}
}

// Record queues a request log for asynchronous persistence. It never blocks:
// when the buffer is full the record is dropped.
func (s *RequestLogService) Record(log *models.RequestLog) {
	log.ID = uuid.NewString()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	select {
	case s.logChan <- log:
	default:
		logrus.Warn("Request log buffer full, dropping record")
	}
}

func (s *RequestLogService) runLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	buffer := make([]*models.RequestLog, 0, logFlushBatchSize)

	for {
		select {
		case log := <-s.logChan:
			buffer = append(buffer, log)
			if len(buffer) >= logFlushBatchSize {
				s.flush(buffer)
				buffer = buffer[:0]
			}
		case <-ticker.C:
			if len(buffer) > 0 {
				s.flush(buffer)
				buffer = buffer[:0]
			}
		case <-s.stopChan:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case log := <-s.logChan:
					buffer = append(buffer, log)
				default:
					if len(buffer) > 0 {
						s.flush(buffer)
					}
					return
				}
			}
		}
	}
}

// flush writes a batch of records to the database.
func (s *RequestLogService) flush(logs []*models.RequestLog) {
	if s.db == nil || len(logs) == 0 {
		return
	}

	start := time.Now()
	if err := s.db.CreateInBatches(logs, logFlushBatchSize).Error; err != nil {
		logrus.WithError(err).Errorf("Failed to flush %d request logs", len(logs))
		return
	}
	logrus.Debugf("Flushed %d request logs in %v", len(logs), time.Since(start))
}
