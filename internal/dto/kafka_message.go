package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type InventoryUpdateItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type InventoryUpdate struct {
	OrderID int64                 `json:"order_id"`
	Items   []InventoryUpdateItem `json:"items"`
}
