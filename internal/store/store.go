// Package store holds the persistence interfaces for plans and funds.
// Keeping the surface narrow (find, insert, update, delete, count) means the
// storage engine behind it stays swappable.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/scattter/FundDig/internal/models"
)

// ErrNotFound is returned when a lookup matches no row. Callers never see
// driver or ORM errors for a plain miss.
var ErrNotFound = errors.New("record not found")

// PlanStore persists Plan rows.
type PlanStore interface {
	Insert(ctx context.Context, plan *models.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Plan, error)
	FindByShortID(ctx context.Context, shortID string) (*models.Plan, error)
	ShortIDExists(ctx context.Context, shortID string) (bool, error)
	// ListAll returns every plan ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	// Delete removes the plan and reports whether a row was actually deleted.
	// Fund rows follow via the store-level cascade constraint.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// FundStore persists Fund rows. Funds are never updated and are deleted only
// through the plan cascade, so the surface is insert/list/count.
type FundStore interface {
	Insert(ctx context.Context, fund *models.Fund) error
	// ListByPlan returns the plan's funds ordered by creation time, newest first.
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]models.Fund, error)
	// CountByPlan returns fund counts for all plans in one aggregate query.
	CountByPlan(ctx context.Context) (map[uuid.UUID]int64, error)
}
