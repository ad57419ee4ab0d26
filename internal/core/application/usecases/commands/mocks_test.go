package commands_test

import (
	"context"
	"strconv"
	"testing"

	"radiology/internal/core/application/usecases/commands"
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/core/ports"
	"radiology/internal/pkg/auth"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.RecordID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockStudyRepository struct{ mock.Mock }

func (m *MockStudyRepository) Add(ctx context.Context, s *study.Study) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudyRepository) Update(ctx context.Context, s *study.Study) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudyRepository) GetByOrderID(ctx context.Context, orderID kernel.RecordID) (*study.Study, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*study.Study), args.Error(1)
}

func (m *MockStudyRepository) UpdateWorklistStatus(
	ctx context.Context,
	studyID kernel.RecordID,
	status study.MwlStatus,
) error {
	args := m.Called(ctx, studyID, status)
	return args.Error(0)
}

func (m *MockStudyRepository) GetAllInFailedSyncStatus(ctx context.Context) ([]*study.Study, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*study.Study), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StudyRepository() ports.StudyRepository {
	args := m.Called()
	return args.Get(0).(ports.StudyRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStudyUoWFactory struct{ mock.Mock }

func (m *MockStudyUoWFactory) Create() commands.StudyUoW {
	args := m.Called()
	return args.Get(0).(commands.StudyUoW)
}

type MockWorklistGateway struct{ mock.Mock }

func (m *MockWorklistGateway) Notify(ctx context.Context, s *study.Study, action study.WorklistAction) error {
	args := m.Called(ctx, s, action)
	return args.Error(0)
}

// authedCtx returns a context carrying an authenticated scheduler, the
// baseline caller for lifecycle commands.
func authedCtx(t *testing.T) context.Context {
	t.Helper()
	p := auth.NewPrincipal(3, "scheduler", []auth.Role{auth.RoleScheduler})
	return auth.WithPrincipal(t.Context(), p)
}

func mustRecordID(t *testing.T, v int64) kernel.RecordID {
	t.Helper()
	id, err := kernel.NewRecordID(v)
	require.NoError(t, err)
	return id
}

// restoredOrder builds a persisted active order for handler tests.
func restoredOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustRecordID(t, id), kernel.NewUUID(),
		mustRecordID(t, 12), mustRecordID(t, 3),
		false, "", false, "", nil,
	)
	require.NoError(t, err)
	return o
}

// restoredStudy builds a persisted study bound to the given order, carrying
// the given synchronization status.
func restoredStudy(t *testing.T, id, orderID int64, status study.MwlStatus) *study.Study {
	t.Helper()
	s, err := study.RestoreStudy(
		mustRecordID(t, id), kernel.NewUUID(), mustRecordID(t, orderID),
		"1.9999."+strconv.FormatInt(id, 10), status,
		study.ModalityCT, study.PriorityRoutine,
		study.ScheduledStepNone, study.PerformedStepNone,
	)
	require.NoError(t, err)
	return s
}
