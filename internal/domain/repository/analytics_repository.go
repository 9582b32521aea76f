package repository

import "github.com/videeinfotech/sultan-super-admin-app/internal/domain/entity"

// AnalyticsRepository series precalculadas que no se derivan de las órdenes.
// Las implementaciones son read-only.
type AnalyticsRepository interface {
	// Trend serie de ingresos del período (etiquetas según el período: horas, días, semanas o meses).
	Trend(period string) ([]entity.TrendPoint, error)
	// Traffic visitas del período; se usa como denominador de la tasa de conversión.
	Traffic(period string) (int, error)
}
