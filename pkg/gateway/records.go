package gateway

// Typed projections of the records each backend service returns. Upstream
// payloads carry more fields than these; unknown fields are ignored on
// decode, and absent optional fields decode to zero values and are dropped
// again on encode via omitempty.

// OrderRecord is the order service's order resource.
type OrderRecord struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number,omitempty"`
	UserID          int64       `json:"user_id,omitempty"`
	RestaurantID    int64       `json:"restaurant_id,omitempty"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`
}

// OrderItem is one line of an order as the order service stores it.
type OrderItem struct {
	MenuItemID   int64   `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// DeliveryRecord is the delivery service's delivery resource.
type DeliveryRecord struct {
	ID              int64   `json:"id"`
	OrderID         int64   `json:"order_id"`
	Status          string  `json:"status"`
	CourierName     string  `json:"courier_name,omitempty"`
	CourierPhone    string  `json:"courier_phone,omitempty"`
	DeliveryAddress string  `json:"delivery_address,omitempty"`
	DeliveryFee     float64 `json:"delivery_fee,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// PaymentRecord is the payment service's payment resource.
type PaymentRecord struct {
	ID            int64   `json:"id"`
	OrderID       int64   `json:"order_id"`
	TransactionID string  `json:"transaction_id,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// Restaurant is the restaurant service's restaurant resource, menu included
// on detail fetches.
type Restaurant struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	CuisineType string     `json:"cuisine_type,omitempty"`
	Address     string     `json:"address,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	IsOpen      bool       `json:"is_open"`
	Menu        []MenuItem `json:"menu,omitempty"`
}

// MenuItem is one entry of a restaurant's menu.
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Category    string `json:"category,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

// User is the user service's profile resource.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateOrderRequest is the payload for POST orders.
type CreateOrderRequest struct {
	UserID       int64       `json:"user_id"`
	RestaurantID int64       `json:"restaurant_id"`
	Items        []OrderItem `json:"items"`
}

// CreateDeliveryRequest is the payload for POST deliveries.
type CreateDeliveryRequest struct {
	OrderID         int64  `json:"order_id"`
	DeliveryAddress string `json:"delivery_address"`
}

// CreatePaymentRequest is the payload for POST payments.
type CreatePaymentRequest struct {
	OrderID       int64   `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}
