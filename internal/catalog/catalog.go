package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/pkg/clients"
)

var (
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrUnavailable      = errors.New("workshop catalog unavailable")
)

// Workshop is the catalog's authoritative view of a purchasable slot.
type Workshop struct {
	UUID        string   `json:"uuid"`
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	Studio      string   `json:"studio"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	PriceMinor  int64    `json:"price"`
	Currency    string   `json:"currency"`
	Purchasable bool     `json:"purchasable"`
}

func (w *Workshop) Snapshot() domain.WorkshopSnapshot {
	return domain.WorkshopSnapshot{
		UUID:    w.UUID,
		Title:   w.Title,
		Artists: w.Artists,
		Studio:  w.Studio,
		Date:    w.Date,
		Time:    w.Time,
	}
}

// Client is the read-only lookup against the external catalog service.
type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.CatalogAddress,
		client:  client,
	}
}

func (c *Client) GetWorkshop(ctx context.Context, workshopID string) (*Workshop, error) {
	url := c.baseURL + "/api/workshops/" + workshopID

	statusCode, respBody, err := c.client.Get(ctx, url, nil)
	if err != nil {
		zap.L().Error("catalog lookup failed", zap.String("workshopID", workshopID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrWorkshopNotFound
	default:
		zap.L().Error("unexpected catalog status", zap.Int("status", statusCode), zap.String("workshopID", workshopID))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, statusCode)
	}

	var workshop Workshop
	if err := json.Unmarshal(respBody, &workshop); err != nil {
		return nil, fmt.Errorf("can't parse workshop: %w", err)
	}
	return &workshop, nil
}
