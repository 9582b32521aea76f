package memory

import (
	"slices"

	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"
	"github.com/videeinfotech/sultan-super-admin-app/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo series sembradas de tráfico y tendencia.
type AnalyticsRepo struct {
	db *DB
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db *DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Trend serie del período; vacía si no hay datos.
func (r *AnalyticsRepo) Trend(period string) ([]entity.TrendPoint, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := slices.Clone(r.db.trends[period])
	if out == nil {
		out = []entity.TrendPoint{}
	}
	return out, nil
}

// Traffic visitas del período.
func (r *AnalyticsRepo) Traffic(period string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.traffic[period], nil
}
