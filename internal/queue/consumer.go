// Package queue фоновый консьюмер событий неявки из backoffice.
// Переход ACTIVA -> AUSENTE инициируется только внешним событием,
// сервис сам неявки не детектирует
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
	prefetchCount      = 50
)

// AusenciaConsumer слушает очередь событий неявки и помечает
// соответствующие резервации как AUSENTE
type AusenciaConsumer struct {
	url       string
	queueName string
	marcador  MarcadorAusencias
	log       Logger
}

// NewAusenciaConsumer создает консьюмер событий неявки
func NewAusenciaConsumer(url, queueName string, marcador MarcadorAusencias, log Logger) *AusenciaConsumer {
	return &AusenciaConsumer{
		url:       url,
		queueName: queueName,
		marcador:  marcador,
		log:       log,
	}
}

// Run подключается к брокеру и потребляет события до отмены контекста.
// При обрыве соединения переподключается с экспоненциальным backoff
func (c *AusenciaConsumer) Run(ctx context.Context) error {
	backoff := reconnectBaseDelay

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Error("ausencia-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < reconnectMaxDelay {
				backoff *= 2
			}
			continue
		}
		backoff = reconnectBaseDelay

		if err := c.consumeLoop(ctx, conn); err != nil {
			_ = conn.Close()
			if errors.Is(err, context.Canceled) {
				return err
			}
			c.log.Warn("ausencia-consumer: consume loop ended: %v; reconnecting", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(reconnectBaseDelay):
			}
			continue
		}
	}
}

func (c *AusenciaConsumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		c.log.Warn("ausencia-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(c.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handleMessage(ctx, d.Body); err != nil {
				c.log.Error("ausencia-consumer: handle message failed: %v", err)
				// Не возвращаем в очередь, чтобы не зациклиться на битом сообщении
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *AusenciaConsumer) handleMessage(ctx context.Context, body []byte) error {
	var ev AusenciaEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.ReservaID <= 0 {
		return fmt.Errorf("invalid reserva id %d", ev.ReservaID)
	}

	if err := c.marcador.MarcarAusente(ctx, ev.ReservaID); err != nil {
		return fmt.Errorf("marcar ausente reserva %d: %w", ev.ReservaID, err)
	}

	c.log.Info("ausencia-consumer: reserva %d marcada como AUSENTE", ev.ReservaID)
	return nil
}
