// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"frs_backend/internal/feature/reports/domain/entity"
	"frs_backend/internal/feature/reports/usecase"
)

// CachingReportRepository decorates a ReportRepository with Redis caching.
// Reports are immutable once recorded, which makes single-report reads safe
// to cache for the full TTL; per-model listings are invalidated whenever a
// new report lands on the model.
type CachingReportRepository struct {
	inner     usecase.ReportRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingReportRepository decorates a ReportRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "reports".
func NewCachingReportRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ReportRepository, namespace string) *CachingReportRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "reports"
	}
	return &CachingReportRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// reportKey is the cache key for a single report.
func (c *CachingReportRepository) reportKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// modelKey is the cache key for a model's report listing.
func (c *CachingReportRepository) modelKey(modelID uint) string {
	return fmt.Sprintf("%s:model:%d", c.namespace, modelID)
}

// Create inserts the report and invalidates the owning model's listing.
func (c *CachingReportRepository) Create(ctx context.Context, report *entity.Report) error {
	if err := c.inner.Create(ctx, report); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.modelKey(report.ModelID)).Err() // Best effort
	return nil
}

// FindByID retrieves a report, checking the cache first.
func (c *CachingReportRepository) FindByID(ctx context.Context, id uint) (*entity.Report, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.reportKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Report
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// ListByModelID retrieves a model's reports, checking the cache first.
func (c *CachingReportRepository) ListByModelID(ctx context.Context, modelID uint) ([]entity.Report, error) {
	if c.rdb == nil {
		return c.inner.ListByModelID(ctx, modelID)
	}

	key := c.modelKey(modelID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Report
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListByModelID(ctx, modelID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
