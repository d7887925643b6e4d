package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/scattter/FundDig/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库绑定单个连接，否则每个新连接都是一个空库
	sqlDB.SetMaxOpenConns(1)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Plan{}, &models.Fund{}))
	return db
}

func insertPlan(t *testing.T, plans PlanStore, shortID, name string) *models.Plan {
	t.Helper()
	plan := &models.Plan{ShortID: shortID, Name: name}
	require.NoError(t, plans.Insert(context.Background(), plan))
	return plan
}

func insertFund(t *testing.T, funds FundStore, plan *models.Plan, code string) *models.Fund {
	t.Helper()
	fund := &models.Fund{
		PlanID:   plan.ID,
		FundCode: code,
		Amount:   decimal.RequireFromString("100.00"),
		FeeRate:  decimal.Zero,
	}
	require.NoError(t, funds.Insert(context.Background(), fund))
	return fund
}

func TestPlanStore_ShortIDUnique(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanStore(db)

	insertPlan(t, plans, "12345678", "first")

	err := plans.Insert(context.Background(), &models.Plan{ShortID: "12345678", Name: "second"})
	require.Error(t, err, "duplicate short id must violate the unique index")
}

func TestPlanStore_Delete_CascadesFunds(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanStore(db)
	funds := NewFundStore(db)
	ctx := context.Background()

	plan := insertPlan(t, plans, "11112222", "cascade")
	other := insertPlan(t, plans, "33334444", "survivor")
	insertFund(t, funds, plan, "000001")
	insertFund(t, funds, plan, "000002")
	kept := insertFund(t, funds, other, "000003")

	removed, err := plans.Delete(ctx, plan.ID)
	require.NoError(t, err)
	require.True(t, removed)

	var n int64
	require.NoError(t, db.Model(&models.Fund{}).Where("plan_id = ?", plan.ID).Count(&n).Error)
	require.Zero(t, n, "funds of the deleted plan must be gone")

	left, err := funds.ListByPlan(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, kept.ID, left[0].ID)

	// deleting again reports no row removed
	removed, err = plans.Delete(ctx, plan.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestPlanStore_ListAll_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanStore(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, shortID := range []string{"10000001", "10000002", "10000003"} {
		p := &models.Plan{ShortID: shortID, Name: shortID, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, plans.Insert(ctx, p))
	}

	all, err := plans.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "10000003", all[0].ShortID)
	require.Equal(t, "10000002", all[1].ShortID)
	require.Equal(t, "10000001", all[2].ShortID)
}

func TestFundStore_CountByPlan(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanStore(db)
	funds := NewFundStore(db)

	a := insertPlan(t, plans, "20000001", "a")
	b := insertPlan(t, plans, "20000002", "b")
	insertPlan(t, plans, "20000003", "empty")

	for i := 0; i < 3; i++ {
		insertFund(t, funds, a, "000001")
	}
	insertFund(t, funds, b, "000002")

	counts, err := funds.CountByPlan(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2, "plans without funds carry no entry")
	require.Equal(t, int64(3), counts[a.ID])
	require.Equal(t, int64(1), counts[b.ID])
}

func TestFundStore_ListByPlan_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	plans := NewPlanStore(db)
	funds := NewFundStore(db)
	ctx := context.Background()

	plan := insertPlan(t, plans, "30000001", "order")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, code := range []string{"000001", "000002", "000003"} {
		f := &models.Fund{
			PlanID:    plan.ID,
			FundCode:  code,
			Amount:    decimal.New(int64(i+1), 0),
			FeeRate:   decimal.Zero,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, funds.Insert(ctx, f))
	}

	got, err := funds.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "000003", got[0].FundCode)
	require.Equal(t, "000001", got[2].FundCode)
}
