// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain entity and its database row.
package orderrepo

import (
	"time"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The storage identifier is assigned by the database on insert and written
// back onto the aggregate; the record UUID identifies the order across
// systems and never changes.
type OrderDTO struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	UUID               string `gorm:"type:uuid;uniqueIndex"`
	PatientID          int64  `gorm:"index"`
	OrdererID          int64
	Voided             bool
	VoidReason         string
	Discontinued       bool
	DiscontinuedReason string
	DiscontinuedDate   *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation. A zero ID leaves identifier assignment to the database.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Int64(),
		UUID:               aggregate.UUID().String(),
		PatientID:          aggregate.PatientID().Int64(),
		OrdererID:          aggregate.OrdererID().Int64(),
		Voided:             aggregate.Voided(),
		VoidReason:         aggregate.VoidReason(),
		Discontinued:       aggregate.Discontinued(),
		DiscontinuedReason: aggregate.DiscontinuedReason(),
		DiscontinuedDate:   aggregate.DiscontinuedDate(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewRecordID(dto.ID)
	if err != nil {
		return nil, err
	}

	recordUUID, err := kernel.UUIDFromString(dto.UUID)
	if err != nil {
		return nil, err
	}

	patientID, err := kernel.NewRecordID(dto.PatientID)
	if err != nil {
		return nil, err
	}

	ordererID, err := kernel.NewRecordID(dto.OrdererID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, recordUUID,
		patientID, ordererID,
		dto.Voided, dto.VoidReason,
		dto.Discontinued, dto.DiscontinuedReason, dto.DiscontinuedDate,
	)
}
