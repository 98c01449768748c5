package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the lifecycle status of an order.
// Completed is the only status that moves stock.
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 0
	OrderStatusDelivered OrderStatus = 1
	OrderStatusCompleted OrderStatus = 2
)

func (s OrderStatus) String() string {
	return [...]string{"Pending", "Delivered", "Completed"}[s]
}

// Valid reports whether the value is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCompleted
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = OrderStatusPending
	case "Delivered":
		*s = OrderStatusDelivered
	case "Completed":
		*s = OrderStatusCompleted
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
