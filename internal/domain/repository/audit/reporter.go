package audit

import (
	"context"

	"tgimg/internal/domain/entity"
)

// Reporter receives compression outcomes. Callers ignore its errors beyond logging.
type Reporter interface {
	Report(ctx context.Context, report *entity.CompressionReport) error
}
