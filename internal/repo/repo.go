package repo

import (
	"github.com/stagepass/stagepass/internal/pg"
	eventrepo "github.com/stagepass/stagepass/internal/repo/event-repo"
	idemrepo "github.com/stagepass/stagepass/internal/repo/idempotency-repo"
	orderrepo "github.com/stagepass/stagepass/internal/repo/order-repo"
	rewardrepo "github.com/stagepass/stagepass/internal/repo/reward-repo"
)

type Repositories struct {
	OrderRepo       *orderrepo.Repository
	RewardRepo      *rewardrepo.Repository
	IdempotencyRepo *idemrepo.Repository
	EventRepo       *eventrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:       orderrepo.New(conn, txManager),
		RewardRepo:      rewardrepo.New(conn, txManager),
		IdempotencyRepo: idemrepo.New(conn),
		EventRepo:       eventrepo.New(conn),
	}
}
