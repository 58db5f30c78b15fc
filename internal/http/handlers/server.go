package handlers

import (
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/redissvc"
	repo "github.com/rogerio-castellano/order-analytics/internal/repo"
)

var (
	datasetRepo repo.DatasetRepository
	resultCache *redissvc.RedisService

	// fixedReference pins relative-period resolution to a configured date
	// instead of the dataset maximum. Zero means use the dataset.
	fixedReference time.Time
)

func SetDatasetRepo(r repo.DatasetRepository) {
	datasetRepo = r
}

// SetRedisService enables the derived-table result cache. Passing nil keeps
// the service fully functional with recompute-per-request.
func SetRedisService(rs *redissvc.RedisService) {
	resultCache = rs
}

func SetFixedReferenceDate(t time.Time) {
	fixedReference = t
}
