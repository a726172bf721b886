// Package events публикует события витрины в NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectPrefix префикс subject событий статуса: storefront.purchases.status.<status>
const SubjectPrefix = "storefront.purchases.status"

// PurchaseStatusChanged событие смены статуса покупки
type PurchaseStatusChanged struct {
	EventID    string                `json:"event_id"`
	PurchaseID string                `json:"purchase_id"`
	BusinessID string                `json:"business_id"`
	BuyerID    string                `json:"buyer_id"`
	From       domain.PurchaseStatus `json:"from"`
	To         domain.PurchaseStatus `json:"to"`
	Actor      string                `json:"actor"`
	At         time.Time             `json:"at"`
}

// msgPublisher часть *nats.Conn, которая нужна публикатору
type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

// Publisher реализует domain.EventPublisher.
// Публикация не влияет на результат операции: ошибки только логируются.
type Publisher struct {
	conn   msgPublisher
	logger *zap.Logger
	now    func() time.Time
}

var _ domain.EventPublisher = (*Publisher)(nil)

// NewPublisher создает публикатор. conn == nil дает публикатор, который ничего не отправляет.
func NewPublisher(conn *nats.Conn, logger *zap.Logger) *Publisher {
	p := &Publisher{logger: logger, now: time.Now}
	if conn != nil {
		p.conn = conn
	}
	return p
}

// Subject возвращает subject события для статуса
func Subject(status domain.PurchaseStatus) string {
	return SubjectPrefix + "." + strings.ToLower(string(status))
}

// PurchaseStatusChanged публикует смену статуса покупки
func (p *Publisher) PurchaseStatusChanged(ctx context.Context, purchase domain.Purchase, from domain.PurchaseStatus, actor string) {
	if p.conn == nil {
		return
	}
	if err := ctx.Err(); err != nil {
		p.logger.Warn("event: context done before publish", zap.Error(err), zap.String("purchase_id", purchase.ID))
		return
	}

	event := PurchaseStatusChanged{
		EventID:    uuid.NewString(),
		PurchaseID: purchase.ID,
		BusinessID: purchase.BusinessID,
		BuyerID:    purchase.BuyerID,
		From:       from,
		To:         purchase.Status,
		Actor:      actor,
		At:         p.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("event: failed to marshal", zap.Error(err), zap.String("purchase_id", purchase.ID))
		return
	}

	msg := nats.NewMsg(Subject(purchase.Status))
	msg.Data = data
	msg.Header.Set(nats.MsgIdHdr, event.EventID)

	if err := p.conn.PublishMsg(msg); err != nil {
		p.logger.Warn("event: failed to publish (non-fatal)",
			zap.Error(err),
			zap.String("subject", msg.Subject),
			zap.String("purchase_id", purchase.ID),
		)
		return
	}

	p.logger.Debug("event: published",
		zap.String("subject", msg.Subject),
		zap.String("purchase_id", purchase.ID),
	)
}

// Connect подключается к NATS с бесконечным переподключением
func Connect(url string, logger *zap.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("storefront-gateway"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return conn, nil
}
