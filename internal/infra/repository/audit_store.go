package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type AuditLogStoreRepository struct {
	store *store.Store
}

func NewAuditLogStoreRepository(s *store.Store) *AuditLogStoreRepository {
	return &AuditLogStoreRepository{store: s}
}

var _ karte.AuditLogRepository = (*AuditLogStoreRepository)(nil)

// ListAuditLogs returns one page of matching entries, newest first, along
// with the number of matches before paging.
func (r *AuditLogStoreRepository) ListAuditLogs(
	_ context.Context,
	f karte.AuditLogFilter,
) ([]models.AuditLog, int, error) {

	q := r.store.From(store.TableAuditLogs)
	if f.Action != "" {
		q = q.Eq("action", f.Action)
	}
	if f.Entity != "" {
		q = q.Eq("entity", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Gte(store.FieldCreatedAt, store.FormatTime(f.From))
	}
	if !f.To.IsZero() {
		q = q.Lte(store.FieldCreatedAt, store.FormatTime(f.To))
	}
	rows := q.OrderDesc(store.FieldCreatedAt).All()

	total := len(rows)
	start := min(max(f.Offset, 0), total)
	end := total
	if f.Limit > 0 {
		end = min(start+f.Limit, total)
	}

	logs, err := decodeAll[models.AuditLog](rows[start:end])
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
