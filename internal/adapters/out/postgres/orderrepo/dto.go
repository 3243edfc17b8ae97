// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the
// frequent lookups by customer, courier and status.
type OrderDTO struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	CourierID           *uuid.UUID  `gorm:"type:uuid;index"`
	Status              string      `gorm:"type:varchar(16);not null;index"`
	TotalPrice          float64     `gorm:"not null"`
	Delivery            DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Payment             PaymentDTO  `gorm:"embedded;embeddedPrefix:payment_"`
	LocationLat         *float64
	LocationLng         *float64
	VerificationCode    string    `gorm:"type:varchar(8);not null"`
	FailedVerifications int       `gorm:"not null;default:0"`
	Items               []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the embedded recipient details within the order table.
type DeliveryDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
	Address string `gorm:"type:varchar(512);not null"`
}

// PaymentDTO represents the embedded payment reference within the order table.
type PaymentDTO struct {
	TransactionID string `gorm:"type:varchar(255);not null"`
	Status        string `gorm:"type:varchar(32);not null"`
}

// ItemDTO represents the database structure for persisting order items.
// Links to its order via foreign key; items are immutable once written.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodID    uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and location.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var lat, lng *float64
	if loc := aggregate.Location(); loc != nil {
		latVal, lngVal := loc.Lat(), loc.Lng()
		lat, lng = &latVal, &lngVal
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			FoodID:    item.FoodID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		CourierID:  courierID,
		Status:     aggregate.Status().String(),
		TotalPrice: aggregate.TotalPrice(),
		Delivery: DeliveryDTO{
			Name:    aggregate.DeliveryInfo().Name(),
			Phone:   aggregate.DeliveryInfo().Phone(),
			Address: aggregate.DeliveryInfo().Address(),
		},
		Payment: PaymentDTO{
			TransactionID: aggregate.Payment().TransactionID(),
			Status:        aggregate.Payment().Status(),
		},
		LocationLat:         lat,
		LocationLng:         lng,
		VerificationCode:    aggregate.Code().String(),
		FailedVerifications: aggregate.FailedVerifications(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		foodID, itemErr := kernel.UUIDFromBytes(itemDto.FoodID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(foodID, itemDto.Quantity, itemDto.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	deliveryInfo, err := order.NewDeliveryInfo(dto.Delivery.Name, dto.Delivery.Phone, dto.Delivery.Address)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(dto.Payment.TransactionID, dto.Payment.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	code, err := order.VerificationCodeFromString(dto.VerificationCode)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, items, deliveryInfo, payment, location,
		status, code, courierID, dto.FailedVerifications,
	)
}
