package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/pg"
	"github.com/stagepass/stagepass/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	cfg := &config.Config{
		OrderTTL:            30 * time.Minute,
		GatewayTimeout:      5 * time.Second,
		QRValidity:          720 * time.Hour,
		CashbackPercent:     5,
		RedemptionCap:       300,
		MaxDiscountFraction: 0.5,
		PointValueMinor:     100,
	}
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	services := New(cfg, repos, txManager, redisClient)

	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.RedemptionService)
	assert.NotNil(t, services.QRService)
}
