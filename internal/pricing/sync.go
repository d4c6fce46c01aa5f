package pricing

import (
	"context"

	"estimator/internal/config"
)

// SyncService refreshes the local pricing file from the rate-schedule API.
// The file is the only cache; there is no database behind it.
type SyncService struct {
	client *Client
	cfg    config.Config
}

func NewSyncService(cfg config.Config) *SyncService {
	return &SyncService{client: NewClient(cfg), cfg: cfg}
}

func (s *SyncService) Sync(ctx context.Context) (int, error) {
	entries, err := s.client.GetEntriesAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := SaveCatalog(s.cfg.PricingPath, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
