package queries_test

import (
	"context"
	"testing"
	"time"

	"radiology/internal/adapters/out/postgres/orderrepo"
	"radiology/internal/adapters/out/postgres/studyrepo"
	"radiology/internal/core/application/usecases/queries"
	"radiology/internal/core/domain/model/kernel"
	"radiology/internal/core/domain/model/order"
	"radiology/internal/core/domain/model/study"
	"radiology/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency in query tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderFormQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderFormQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	studyRepo *studyrepo.GormStudyRepository
}

func (suite *GetOrderFormQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &studyrepo.StudyDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderFormQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.studyRepo = studyrepo.NewGormStudyRepository(db, noopTracker{})
}

func (suite *GetOrderFormQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderFormQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, studies RESTART IDENTITY").Error)
}

func (suite *GetOrderFormQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsFullReadModel() {
	ctx := context.Background()

	o, s := suite.seedOrderWithStudy(ctx)

	query := queries.NewGetOrderFormQuery(o.ID(), kernel.RecordID{})
	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID().Int64(), resp.OrderID)
	suite.Equal(o.PatientID().Int64(), resp.PatientID)
	suite.Equal(o.OrdererID().Int64(), resp.OrdererID)
	suite.Equal("Active", resp.State)
	suite.False(resp.Voided)
	suite.False(resp.Discontinued)
	suite.Equal("CT", resp.Modality)
	suite.Equal("ROUTINE", resp.Priority)
	suite.Equal(s.StudyInstanceUID(), resp.StudyInstanceUID)
	suite.Equal("save_ok", resp.MwlStatus)
	suite.False(resp.Performed)
}

func (suite *GetOrderFormQueryHandlerTestSuite) TestHandle_VoidedOrder_StateReflectsFlag() {
	ctx := context.Background()

	o, _ := suite.seedOrderWithStudy(ctx)
	suite.Require().NoError(o.Void("duplicate entry"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query := queries.NewGetOrderFormQuery(o.ID(), kernel.RecordID{})
	resp, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(resp.Voided)
	suite.Equal("duplicate entry", resp.VoidReason)
	suite.Equal("Voided", resp.State)
}

func (suite *GetOrderFormQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	orderID, err := kernel.NewRecordID(424242)
	suite.Require().NoError(err)

	query := queries.NewGetOrderFormQuery(orderID, kernel.RecordID{})
	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderFormQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetOrderFormQuery

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().ErrorIs(err, queries.ErrGetOrderFormQueryIsNotConstructed)
}

// seedOrderWithStudy persists an active CT order with a synced study and
// returns both aggregates.
func (suite *GetOrderFormQueryHandlerTestSuite) seedOrderWithStudy(
	ctx context.Context,
) (*order.Order, *study.Study) {
	patientID, err := kernel.NewRecordID(12)
	suite.Require().NoError(err)
	ordererID, err := kernel.NewRecordID(3)
	suite.Require().NoError(err)

	o, err := order.NewOrder(patientID, ordererID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	s, err := study.NewStudy(study.ModalityCT, study.PriorityRoutine)
	suite.Require().NoError(err)
	suite.Require().NoError(s.BindToOrder(o.ID()))
	suite.Require().NoError(suite.studyRepo.Add(ctx, s))

	suite.Require().NoError(s.AssignStudyInstanceUID("1.9999." + s.ID().String()))
	suite.Require().NoError(s.RecordWorklistOutcome(study.MwlSaveOK))
	suite.Require().NoError(suite.studyRepo.Update(ctx, s))

	return o, s
}

func TestGetOrderFormQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderFormQueryHandlerTestSuite))
}
