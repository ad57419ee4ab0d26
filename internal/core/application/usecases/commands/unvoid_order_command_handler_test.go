package commands_test

import (
	"testing"

	"radiology/internal/core/application/usecases/commands"
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func voidedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustRecordID(t, id), kernel.NewUUID(),
		mustRecordID(t, 12), mustRecordID(t, 3),
		true, "entered in error", false, "", nil,
	)
	require.NoError(t, err)
	return o
}

func TestUnvoidOrderCommandHandler_Handle_WorklistConfirmed(t *testing.T) {
	ctx := authedCtx(t)
	cmd, err := commands.NewUnvoidOrderCommand(mustRecordID(t, 7))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	studyRepo := new(MockStudyRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StudyRepository").Return(studyRepo)

	orderRepo.On("Get", mock.Anything, mustRecordID(t, 7)).
		Return(voidedOrder(t, 7), nil).Once()
	studyRepo.On("GetByOrderID", mock.Anything, mustRecordID(t, 7)).
		Return(restoredStudy(t, 5, 7, study.MwlVoidOK), nil).Once()

	gateway := new(MockWorklistGateway)
	gateway.On("Notify", mock.Anything, mock.AnythingOfType("*study.Study"), study.ActionUnvoid).
		Return(nil).Once()
	studyRepo.On("GetByOrderID", mock.Anything, mustRecordID(t, 7)).
		Return(restoredStudy(t, 5, 7, study.MwlUnvoidOK), nil).Once()

	var voided bool
	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			voided = args.Get(1).(*order.Order).Voided()
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnvoidOrderCommandHandler(factory, gateway)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeUnvoided, outcome)
	assert.False(t, voided)
	uow.AssertExpectations(t)
}

func TestUnvoidOrderCommandHandler_Handle_WorklistRefused(t *testing.T) {
	ctx := authedCtx(t)
	cmd, err := commands.NewUnvoidOrderCommand(mustRecordID(t, 7))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	studyRepo := new(MockStudyRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StudyRepository").Return(studyRepo)

	orderRepo.On("Get", mock.Anything, mustRecordID(t, 7)).
		Return(voidedOrder(t, 7), nil).Once()
	studyRepo.On("GetByOrderID", mock.Anything, mustRecordID(t, 7)).
		Return(restoredStudy(t, 5, 7, study.MwlVoidOK), nil).Once()

	gateway := new(MockWorklistGateway)
	gateway.On("Notify", mock.Anything, mock.AnythingOfType("*study.Study"), study.ActionUnvoid).
		Return(nil).Once()
	studyRepo.On("GetByOrderID", mock.Anything, mustRecordID(t, 7)).
		Return(restoredStudy(t, 5, 7, study.MwlUnvoidErr), nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnvoidOrderCommandHandler(factory, gateway)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeUnvoidWorklistFailed, outcome)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
