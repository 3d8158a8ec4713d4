package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// RedisPublisher publica o alerta no canal do destinatário; o
// frontend mantém uma assinatura por perfil logado
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, recipientID uint, n *models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf("notify:profile:%d", recipientID)
	return p.rdb.Publish(ctx, channel, payload).Err()
}

var _ Publisher = (*RedisPublisher)(nil)
