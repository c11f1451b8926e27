package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/pg"
)

// Repository deduplicates gateway webhook deliveries by transaction id.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Record marks a gateway event as processed. Returns false when the event
// id was already recorded, which is how webhook replays are absorbed.
func (r *Repository) Record(ctx context.Context, eventID, orderID, outcome string) (bool, error) {
	query := `
        INSERT INTO gateway_events (event_id, order_id, outcome)
        VALUES ($1, $2, $3)
        ON CONFLICT (event_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, eventID, orderID, outcome)
	if err != nil {
		zap.L().Error("can't record gateway event", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
