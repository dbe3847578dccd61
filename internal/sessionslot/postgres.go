package sessionslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-karte/internal/models"
)

// Postgres keeps the slot as one row of the session_slots table.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Load(ctx context.Context) ([]byte, bool, error) {
	var row models.SessionSlot
	err := p.db.WithContext(ctx).Where("key = ?", Key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapPgError("select", err)
	}
	return []byte(row.Value), true, nil
}

func (p *Postgres) Save(ctx context.Context, value []byte) error {
	row := models.SessionSlot{Key: Key, Value: string(value)}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return wrapPgError("upsert", err)
	}
	return nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	if err := p.db.WithContext(ctx).
		Where("key = ?", Key).
		Delete(&models.SessionSlot{}).Error; err != nil {
		return wrapPgError("delete", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// wrapPgError adds the SQLSTATE of a server-side failure to the message.
func wrapPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("sessionslot: %s (sqlstate %s): %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("sessionslot: %s: %w", op, err)
}
