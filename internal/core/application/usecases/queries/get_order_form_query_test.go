package queries_test

import (
	"context"
	"testing"

	"radiology/internal/core/application/usecases/queries"
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecordID(t *testing.T, v int64) kernel.RecordID {
	t.Helper()
	id, err := kernel.NewRecordID(v)
	require.NoError(t, err)
	return id
}

func TestNewGetOrderFormQuery_ExistingOrder(t *testing.T) {
	query := queries.NewGetOrderFormQuery(mustRecordID(t, 7), kernel.RecordID{})
	assert.NoError(t, query.Validate())
	assert.False(t, query.IsNew())
	assert.Equal(t, mustRecordID(t, 7), query.OrderID())
}

func TestNewGetOrderFormQuery_BlankForm(t *testing.T) {
	query := queries.NewGetOrderFormQuery(kernel.RecordID{}, mustRecordID(t, 12))
	assert.NoError(t, query.Validate())
	assert.True(t, query.IsNew())
	assert.Equal(t, mustRecordID(t, 12), query.PatientID())
}

func TestGetOrderFormQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderFormQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderFormQueryIsNotConstructed)
}

func TestGetOrderFormQueryHandler_Handle_BlankForm_PresetsPatient(t *testing.T) {
	handler := queries.NewGetOrderFormQueryHandler(nil)
	query := queries.NewGetOrderFormQuery(kernel.RecordID{}, mustRecordID(t, 12))

	resp, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)
	assert.Zero(t, resp.OrderID)
	assert.Equal(t, int64(12), resp.PatientID)
	assert.Zero(t, resp.OrdererID)
	assert.Equal(t, "Active", resp.State)
}

func TestGetOrderFormQueryHandler_Handle_BlankForm_ReferringCallerBecomesOrderer(t *testing.T) {
	handler := queries.NewGetOrderFormQueryHandler(nil)
	query := queries.NewGetOrderFormQuery(kernel.RecordID{}, kernel.RecordID{})

	p := auth.NewPrincipal(3, "dr.house", []auth.Role{auth.RoleReferringPhysician})
	ctx := auth.WithPrincipal(context.Background(), p)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.OrdererID)
}

func TestGetOrderFormQueryHandler_Handle_BlankForm_SchedulerGetsNoOrdererPreset(t *testing.T) {
	handler := queries.NewGetOrderFormQueryHandler(nil)
	query := queries.NewGetOrderFormQuery(kernel.RecordID{}, kernel.RecordID{})

	p := auth.NewPrincipal(3, "scheduler", []auth.Role{auth.RoleScheduler})
	ctx := auth.WithPrincipal(context.Background(), p)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	assert.Zero(t, resp.OrdererID)
}
