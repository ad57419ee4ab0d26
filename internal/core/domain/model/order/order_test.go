package order_test

import (
	"testing"
	"time"

	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecordID(t *testing.T, v int64) kernel.RecordID {
	t.Helper()
	id, err := kernel.NewRecordID(v)
	require.NoError(t, err)
	return id
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustRecordID(t, 12), mustRecordID(t, 3))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_active_order_without_storage_id", func(t *testing.T) {
		// Given
		patientID := mustRecordID(t, 12)
		ordererID := mustRecordID(t, 3)

		// When
		o, err := order.NewOrder(patientID, ordererID)

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.False(t, o.ID().IsAssigned())
		assert.NoError(t, o.UUID().Validate())
		assert.True(t, o.PatientID().IsEqual(patientID))
		assert.True(t, o.OrdererID().IsEqual(ordererID))
		assert.False(t, o.Voided())
		assert.False(t, o.Discontinued())
		assert.Equal(t, order.Active, o.State())
	})

	t.Run("requires_patient_reference", func(t *testing.T) {
		var missing kernel.RecordID

		_, err := order.NewOrder(missing, mustRecordID(t, 3))

		require.Error(t, err)
	})

	t.Run("requires_orderer_reference", func(t *testing.T) {
		var missing kernel.RecordID

		_, err := order.NewOrder(mustRecordID(t, 12), missing)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_fails_validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("assigns_storage_id_once", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		id := mustRecordID(t, 7)

		// When
		err := o.AssignID(id)

		// Then
		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
	})

	t.Run("rejects_second_assignment", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.AssignID(mustRecordID(t, 7)))

		// When
		err := o.AssignID(mustRecordID(t, 8))

		// Then
		require.ErrorIs(t, err, order.ErrOrderIDAlreadyAssigned)
		assert.Equal(t, int64(7), o.ID().Int64())
	})

	t.Run("rejects_unassigned_id", func(t *testing.T) {
		o := newTestOrder(t)
		var missing kernel.RecordID

		require.Error(t, o.AssignID(missing))
	})
}

func TestOrder_Void(t *testing.T) {
	t.Run("voids_with_reason", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		err := o.Void("duplicate")

		// Then
		require.NoError(t, err)
		assert.True(t, o.Voided())
		assert.Equal(t, "duplicate", o.VoidReason())
		assert.Equal(t, order.Voided, o.State())
	})

	t.Run("requires_reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Void("")

		require.ErrorIs(t, err, order.ErrVoidReasonIsRequired)
		assert.False(t, o.Voided())
	})

	t.Run("unvoid_clears_flag_and_reason", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Void("duplicate"))

		// When
		o.Unvoid()

		// Then
		assert.False(t, o.Voided())
		assert.Empty(t, o.VoidReason())
		assert.Equal(t, order.Active, o.State())
	})
}

func TestOrder_Discontinue(t *testing.T) {
	t.Run("discontinues_with_reason_and_date", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		date := time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)

		// When
		err := o.Discontinue("patient request", date)

		// Then
		require.NoError(t, err)
		assert.True(t, o.Discontinued())
		assert.Equal(t, "patient request", o.DiscontinuedReason())
		require.NotNil(t, o.DiscontinuedDate())
		assert.Equal(t, date, *o.DiscontinuedDate())
		assert.Equal(t, order.Discontinued, o.State())
	})

	t.Run("requires_reason", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Discontinue("", time.Now())

		require.ErrorIs(t, err, order.ErrDiscontinueReasonIsRequired)
		assert.False(t, o.Discontinued())
	})

	t.Run("undiscontinue_clears_flag_reason_and_date", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Discontinue("patient request", time.Now()))

		// When
		o.Undiscontinue()

		// Then
		assert.False(t, o.Discontinued())
		assert.Empty(t, o.DiscontinuedReason())
		assert.Nil(t, o.DiscontinuedDate())
	})
}

func TestOrder_FlagsAreIndependent(t *testing.T) {
	// The clinical record model keeps voided and discontinued independent:
	// setting one never clears the other.
	t.Run("voiding_a_discontinued_order_keeps_both_flags", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.Discontinue("patient request", time.Now()))

		// When
		require.NoError(t, o.Void("duplicate"))

		// Then
		assert.True(t, o.Voided())
		assert.True(t, o.Discontinued())
		assert.Equal(t, order.Voided, o.State())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rehydrates_persisted_state", func(t *testing.T) {
		// Given
		id := mustRecordID(t, 7)
		recordUUID := kernel.NewUUID()
		date := time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)

		// When
		o, err := order.RestoreOrder(
			id, recordUUID,
			mustRecordID(t, 12), mustRecordID(t, 3),
			true, "duplicate",
			true, "patient request", &date,
		)

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.UUID().IsEqual(recordUUID))
		assert.True(t, o.Voided())
		assert.Equal(t, "duplicate", o.VoidReason())
		assert.True(t, o.Discontinued())
		assert.Equal(t, "patient request", o.DiscontinuedReason())
	})

	t.Run("requires_assigned_storage_id", func(t *testing.T) {
		var missing kernel.RecordID

		_, err := order.RestoreOrder(
			missing, kernel.NewUUID(),
			mustRecordID(t, 12), mustRecordID(t, 3),
			false, "", false, "", nil,
		)

		require.Error(t, err)
	})
}

func TestDeriveState(t *testing.T) {
	testCases := []struct {
		name         string
		voided       bool
		discontinued bool
		expected     order.State
	}{
		{"active", false, false, order.Active},
		{"voided", true, false, order.Voided},
		{"discontinued", false, true, order.Discontinued},
		{"voided_takes_precedence", true, true, order.Voided},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.DeriveState(tc.voided, tc.discontinued))
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Active", order.Active.String())
	assert.Equal(t, "Voided", order.Voided.String())
	assert.Equal(t, "Discontinued", order.Discontinued.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.State(99).String())
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, order.Active.Validate())
	require.NoError(t, order.Voided.Validate())
	require.NoError(t, order.Discontinued.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.State(99).Validate())
}
