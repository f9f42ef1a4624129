package downstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/shopantik/payment-service/internal/domain"
	"github.com/shopantik/payment-service/internal/dto"
)

// KafkaInventoryPublisher hands paid order lines to the inventory service
// over the broker. The consumer owns the stock decrement; this side only
// publishes.
type messageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

type KafkaInventoryPublisher struct {
	producer messageWriter
}

func CreateKafkaInventoryPublisher(producer *kafka.Conn) *KafkaInventoryPublisher {
	return &KafkaInventoryPublisher{
		producer: producer,
	}
}

func (p *KafkaInventoryPublisher) PublishInventoryUpdate(ctx context.Context, order domain.Order) error {
	payload := dto.InventoryUpdate{
		OrderID: order.ID,
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, dto.InventoryUpdateItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "update_inventory",
		Data:      payload,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	// Keyed on the gateway transaction number so redeliveries for the
	// same payment land on the same partition. Falls back to the order id
	// for rows that never saw a gateway session.
	key := fmt.Sprintf("%d", order.ID)
	if order.SSLCommerzTranID != nil && *order.SSLCommerzTranID != "" {
		key = *order.SSLCommerzTranID
	}

	_, err = p.producer.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		},
	)

	return err
}
