package analytics_controller

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Controller serves the dashboard KPI cards, the daily sales chart and the
// per-user range preference.
type Controller struct {
	DB    *gorm.DB
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

func New(db *gorm.DB, pool *pgxpool.Pool, rdb *redis.Client) *Controller {
	return &Controller{DB: db, Pool: pool, Redis: rdb}
}
