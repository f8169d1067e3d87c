// Package models defines the persistent data model.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// RequestLog records one handled gateway request for auditing and diagnostics.
// Logs are written asynchronously in batches by services.RequestLogService.
type RequestLog struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Timestamp  time.Time      `gorm:"index;not null" json:"timestamp"`
	Identity   string         `gorm:"size:64;index" json:"identity"`
	Endpoint   string         `gorm:"size:64" json:"endpoint"`
	SourceLang string         `gorm:"size:16" json:"source_lang"`
	TargetLang string         `gorm:"size:16" json:"target_lang"`
	Mode       string         `gorm:"size:16" json:"mode"`
	ItemCount  int            `json:"item_count"`
	StatusCode int            `json:"status_code"`
	ErrorCode  string         `gorm:"size:64" json:"error_code"`
	DurationMs int64          `json:"duration_ms"`
	Detail     datatypes.JSON `json:"detail,omitempty"`
}

// TableName sets the table name for RequestLog.
func (RequestLog) TableName() string {
	return "request_logs"
}
