package ports

import (
	"context"
	"conversion-service/internal/domain"
)

// ConversionRecorder persists the audit trail of served conversions.
// Implementations must be safe for concurrent use by HTTP handlers.
type ConversionRecorder interface {
	Record(ctx context.Context, rec domain.ConversionRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.ConversionRecord, error)
}
