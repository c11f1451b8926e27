package service

import (
	"github.com/redis/go-redis/v9"

	"github.com/stagepass/stagepass/internal/cache"
	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/gateway"
	"github.com/stagepass/stagepass/internal/pg"
	"github.com/stagepass/stagepass/internal/repo"
	orderservice "github.com/stagepass/stagepass/internal/service/orderservice"
	qrservice "github.com/stagepass/stagepass/internal/service/qrservice"
	"github.com/stagepass/stagepass/internal/service/redemption"
	rewardservice "github.com/stagepass/stagepass/internal/service/rewardservice"
	"github.com/stagepass/stagepass/pkg/clients"
)

type Services struct {
	OrderService      *orderservice.Service
	RewardService     *rewardservice.Service
	RedemptionService *redemption.Service
	QRService         *qrservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, redisClient *redis.Client) *Services {
	httpClient := clients.NewHTTPClient()
	gatewayClient := gateway.New(cfg, httpClient)
	catalogClient := catalog.New(cfg, httpClient)
	balanceCache := cache.NewBalanceCache(redisClient)

	rewardService := rewardservice.New(repos.RewardRepo, balanceCache)
	calc := redemption.NewCalculator(cfg)
	redemptionService := redemption.NewService(calc, rewardService, catalogClient)
	orderService := orderservice.New(cfg, repos.OrderRepo, gatewayClient, catalogClient,
		rewardService, calc, repos.IdempotencyRepo, repos.EventRepo, txManager)

	return &Services{
		OrderService:      orderService,
		RewardService:     rewardService,
		RedemptionService: redemptionService,
		QRService:         qrservice.New(cfg),
	}
}
