package database

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/scattter/FundDig/internal/config"
	"github.com/scattter/FundDig/internal/models"
)

// 级联删除依赖 foreign_keys，而 SQLite 的 PRAGMA 只对单个连接生效，
// 所以必须保证连接池里每个新建的连接都带上它。
func TestInit_SQLiteForeignKeysOnEveryConnection(t *testing.T) {
	db, err := Init(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "pool.db"),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	plan := &models.Plan{ShortID: "50000001", Name: "cascade"}
	require.NoError(t, db.Create(plan).Error)
	require.NoError(t, db.Omit("Plan").Create(&models.Fund{
		PlanID:   plan.ID,
		FundCode: "000001",
		Amount:   decimal.New(1, 0),
	}).Error)

	// 丢掉所有空闲连接，让后续语句跑在全新的池连接上
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)
	require.NoError(t, sqlDB.Ping())
	sqlDB.SetMaxIdleConns(5)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	require.Equal(t, 1, enabled, "foreign_keys must be on for fresh pool connections")

	require.NoError(t, db.Where("id = ?", plan.ID).Delete(&models.Plan{}).Error)

	var orphans int64
	require.NoError(t, db.Model(&models.Fund{}).Where("plan_id = ?", plan.ID).Count(&orphans).Error)
	require.Zero(t, orphans, "plan delete must cascade to its funds")
}

func TestInit_UnknownDriver(t *testing.T) {
	_, err := Init(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
}
