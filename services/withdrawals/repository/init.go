package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/kasule/wagepay/internal/pkg/database"
	"github.com/kasule/wagepay/internal/pkg/models"
)

// WithdrawalRepo handles persistence for the withdrawal flow
type WithdrawalRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewWithdrawalRepo creates a new withdrawal repository instance
func NewWithdrawalRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *WithdrawalRepo {
	return &WithdrawalRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
