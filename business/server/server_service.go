package server

import (
	"context"
	"time"

	"pterostore/domain"
	"pterostore/pkg/logger"
	"pterostore/pkg/metrics"
)

// ServersRepository contract interface
type ServersRepository interface {
	FindAllByUser(ctx context.Context, userID string) ([]domain.Server, error)
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ServerProduct is the tier projection shown on the server dashboard.
type ServerProduct struct {
	Name string `json:"name"`
	RAM  int    `json:"ram"`
	CPU  int    `json:"cpu"`
}

type ServerOrder struct {
	domain.Order
	Product ServerProduct `json:"product"`
}

type ServerListItem struct {
	domain.Server
	Order ServerOrder `json:"order"`
}

type serverService struct {
	serverRepo ServersRepository
}

func NewServerService(serverRepo ServersRepository) *serverService {
	return &serverService{
		serverRepo: serverRepo,
	}
}

// ListServersForUser returns the requester's servers, newest first, each
// with the originating order and tier.
func (s *serverService) ListServersForUser(ctx context.Context, userID string) ([]ServerListItem, error) {
	servers, err := s.serverRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]ServerListItem, 0, len(servers))
	for _, srv := range servers {
		item := ServerListItem{Server: srv}
		if srv.Order != nil {
			item.Order = ServerOrder{Order: *srv.Order}
			if srv.Order.Product != nil {
				item.Order.Product = ServerProduct{
					Name: srv.Order.Product.Name,
					RAM:  srv.Order.Product.RAM,
					CPU:  srv.Order.Product.CPU,
				}
			}
			item.Order.Order.Product = nil
		}
		item.Server.Order = nil
		items = append(items, item)
	}

	return items, nil
}

// ExpireOverdue marks ACTIVE servers past their expiry as EXPIRED. Runs
// from the background sweep; best-effort, failures are logged and retried
// on the next tick.
func (s *serverService) ExpireOverdue(ctx context.Context) error {
	expired, err := s.serverRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to expire overdue servers", err)
		return err
	}

	if expired > 0 {
		metrics.ServersExpired.Add(float64(expired))
		logger.Info("Expired overdue servers", "count", expired)
	}

	return nil
}
