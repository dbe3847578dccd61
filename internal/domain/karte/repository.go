package karte

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-karte/internal/models"
)

// ===============================
// Inputs
// ===============================

type ClientInput struct {
	Name           string
	Contact        *string
	Notes          string
	PrimaryStaffID *string
}

type VisitInput struct {
	ClientID    string
	VisitDate   string
	ServiceMenu string
	Notes       string
	CreatedBy   string
}

type MeasurementInput struct {
	ClientID   string
	Value      float64
	MeasuredAt time.Time
	CreatedBy  string
}

type UserInput struct {
	Email  string
	Name   string
	Role   Role
	Active bool
}

// VisitFilter narrows a visit listing. Empty fields do not filter.
type VisitFilter struct {
	ClientID string
	Search   string
}

// MeasurementRange selects one client's measurements between From and To,
// both inclusive.
type MeasurementRange struct {
	ClientID string
	From     time.Time
	To       time.Time
}

// ===============================
// Repositories
// ===============================

type UserRepository interface {
	GetActiveUser(ctx context.Context, id string) (*models.User, error)
	ListActiveStaff(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in UserInput) (*models.User, error)
}

type ClientRepository interface {
	ListClients(ctx context.Context, search string) ([]models.Client, error)
	ListClientNames(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	CreateClient(ctx context.Context, in ClientInput) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, in ClientInput) error
}

type VisitRepository interface {
	ListVisits(ctx context.Context, f VisitFilter) ([]models.Visit, error)
	CreateVisit(ctx context.Context, in VisitInput) (*models.Visit, error)
	UpdateVisit(ctx context.Context, id string, in VisitInput) error
}

type MeasurementRepository interface {
	ListMeasurements(ctx context.Context, r MeasurementRange) ([]models.Measurement, error)
	CreateMeasurement(ctx context.Context, in MeasurementInput) (*models.Measurement, error)
}

// ErrNotFound reports that no record matched a lookup by id.
var ErrNotFound = errors.New("record not found")

// AuditLogFilter narrows the audit trail. Zero values do not filter.
type AuditLogFilter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Offset int
	Limit  int
}

type AuditLogRepository interface {
	ListAuditLogs(ctx context.Context, f AuditLogFilter) (logs []models.AuditLog, total int, err error)
}
