package http

// Request and response bodies for the HTTP API. Field names follow the
// contract in api/openapi.yml.

// Error is the standard error envelope for all failure responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is a single requested menu item within NewOrder.
// It carries no price; prices are resolved from the food catalog.
type NewOrderItem struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

// Delivery carries the recipient contact and drop-off address.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Payment carries the upstream payment reference for the order.
type Payment struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// Location is an optional drop-off geolocation.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	Items    []NewOrderItem `json:"items"`
	Delivery Delivery       `json:"delivery"`
	Payment  Payment        `json:"payment"`
	Location *Location      `json:"location,omitempty"`
}

// OrderCreated is the response body for a successfully placed order.
// The verification code is never returned here; it reaches the customer
// through the notification channel only.
type OrderCreated struct {
	ID string `json:"id"`
}

// VerifyDelivery is the request body for confirming a handoff.
type VerifyDelivery struct {
	Code string `json:"code"`
}

// Order is a read-model row returned by the order listing endpoints.
type Order struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	CourierID  *string `json:"courier_id,omitempty"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	PlacedAt   string  `json:"placed_at"`
}

// NewCourier is the request body for onboarding a courier.
type NewCourier struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Courier is a read-model row returned by the courier listing endpoint.
type Courier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IsAvailable bool   `json:"is_available"`
}

// StatusUpdate is the request body for the administrative status override.
type StatusUpdate struct {
	Status string `json:"status"`
}
