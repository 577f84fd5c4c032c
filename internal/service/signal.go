package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/citizengeo/sites/internal/domain"
)

const siteEventChannel = "gnc_sites:events"

// SignalService fans site lifecycle events out to realtime listeners via
// redis pub/sub.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) PublishSiteCreated(ctx context.Context, event domain.SiteEvent) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, siteEventChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Realtime subscribes to the site event channel and forwards decoded
// events to output until the context is done. Undecodable payloads are
// skipped.
func (s *SignalService) Realtime(ctx context.Context, output chan<- domain.SiteEvent) {
	pubsub := s.rdb.Subscribe(ctx, siteEventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event domain.SiteEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
