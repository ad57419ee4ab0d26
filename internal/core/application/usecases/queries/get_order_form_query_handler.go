package queries

import (
	"context"
	"time"

	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/pkg/auth"
	"radiology/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderFormQueryHandler loads the order form read model from the database.
//
// For an existing order the handler joins the order row with its study row.
// For a blank form it fills in the references a new order starts from: the
// patient preset passed by the caller and, when the caller holds the
// referring capability, the caller as orderer.
type GetOrderFormQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderFormQueryHandler creates a handler for order form queries.
func NewGetOrderFormQueryHandler(db *gorm.DB) GetOrderFormQueryHandler {
	return GetOrderFormQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when an
// existing order is requested and either the order or its study is missing.
func (h GetOrderFormQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFormQuery,
) (GetOrderFormQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderFormQueryResponse{}, err
	}

	if query.IsNew() {
		return h.blankForm(ctx, query), nil
	}

	return h.loadForm(ctx, query)
}

// blankForm builds the prefilled response for a new order.
func (h GetOrderFormQueryHandler) blankForm(ctx context.Context, query GetOrderFormQuery) GetOrderFormQueryResponse {
	resp := GetOrderFormQueryResponse{
		State:    order.Active.String(),
		Modality: study.ModalityUnknown.String(),
		Priority: study.PriorityRoutine.String(),
	}

	if query.PatientID().IsAssigned() {
		resp.PatientID = query.PatientID().Int64()
	}

	if p, ok := auth.FromContext(ctx); ok && p.Capabilities.Referring {
		resp.OrdererID = p.UserID
	}

	return resp
}

func (h GetOrderFormQueryHandler) loadForm(
	ctx context.Context,
	query GetOrderFormQuery,
) (GetOrderFormQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.patient_id,
			o.orderer_id,
			o.voided,
			o.void_reason,
			o.discontinued,
			o.discontinued_reason,
			o.discontinued_date,
			s.modality,
			s.priority,
			s.study_instance_uid,
			s.mwl_status,
			s.performed_step_status
		FROM orders o
		JOIN studies s ON s.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().Int64()).Row()

	var resp GetOrderFormQueryResponse
	var discontinuedDate *time.Time
	var modality, priority, mwlStatus, performedStatus int

	err := row.Scan(
		&resp.OrderID,
		&resp.PatientID,
		&resp.OrdererID,
		&resp.Voided,
		&resp.VoidReason,
		&resp.Discontinued,
		&resp.DiscontinuedReason,
		&discontinuedDate,
		&modality,
		&priority,
		&resp.StudyInstanceUID,
		&mwlStatus,
		&performedStatus,
	)
	if err != nil {
		return GetOrderFormQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"order form", query.OrderID().String(), err,
		)
	}

	resp.DiscontinuedDate = discontinuedDate
	resp.State = order.DeriveState(resp.Voided, resp.Discontinued).String()
	resp.Modality = study.Modality(modality).String()
	resp.Priority = study.Priority(priority).String()
	resp.MwlStatus = study.MwlStatus(mwlStatus).String()

	performed := study.PerformedStepStatus(performedStatus)
	resp.Performed = performed == study.PerformedStepInProgress || performed == study.PerformedStepCompleted

	return resp, nil
}
