package queries

import (
	"context"

	"radiology/internal/core/domain/model/study"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves active orders from the database.
// Voided and discontinued orders are filtered out; both flags hide an order
// from the list regardless of the other.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order list
// queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.patient_id,
			o.orderer_id,
			s.modality,
			s.priority,
			s.study_instance_uid,
			s.mwl_status
		FROM orders o
		JOIN studies s ON s.order_id = o.id
		WHERE NOT o.voided AND NOT o.discontinued
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var modality, priority, mwlStatus int

		err = rows.Scan(
			&resp.OrderID,
			&resp.PatientID,
			&resp.OrdererID,
			&modality,
			&priority,
			&resp.StudyInstanceUID,
			&mwlStatus,
		)
		if err != nil {
			return nil, err
		}

		resp.Modality = study.Modality(modality).String()
		resp.Priority = study.Priority(priority).String()
		resp.MwlStatus = study.MwlStatus(mwlStatus).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
