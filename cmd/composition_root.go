package cmd

import (
	"fmt"
	"time"

	"radiology/internal/adapters/out/mwl"
	"radiology/internal/adapters/out/postgres"
	"radiology/internal/core/application/usecases/commands"
	"radiology/internal/core/application/usecases/queries"
	"radiology/internal/core/domain/services"

	"gorm.io/gorm"
)

const defaultWorklistTimeout = 10 * time.Second

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	gateway      *mwl.Gateway
	uidGenerator services.StudyUIDGenerator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	timeout := defaultWorklistTimeout
	if configs.WorklistTimeout != "" {
		parsed, err := time.ParseDuration(configs.WorklistTimeout)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("invalid worklist timeout: %w", err)
		}
		timeout = parsed
	}

	// The gateway records notification outcomes outside any open command
	// transaction, so it gets its own unit of work.
	gateway := mwl.NewGateway(configs.WorklistURL, timeout, uowFactory.Create().StudyRepository())

	prefix := configs.StudyUIDPrefix
	if prefix == "" {
		prefix = services.DefaultStudyUIDPrefix
	}
	uidGenerator, err := services.NewStudyUIDGenerator(prefix)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid study UID prefix: %w", err)
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *uowFactory,
		gateway:      gateway,
		uidGenerator: uidGenerator,
	}, nil
}

func (c *CompositionRoot) CreateSaveOrderCommandHandler() commands.SaveOrderCommandHandler {
	return commands.NewSaveOrderCommandHandler(c.createUoWFactory(), c.gateway, c.uidGenerator)
}

func (c *CompositionRoot) CreateVoidOrderCommandHandler() commands.VoidOrderCommandHandler {
	return commands.NewVoidOrderCommandHandler(c.createUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateUnvoidOrderCommandHandler() commands.UnvoidOrderCommandHandler {
	return commands.NewUnvoidOrderCommandHandler(c.createUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateDiscontinueOrderCommandHandler() commands.DiscontinueOrderCommandHandler {
	return commands.NewDiscontinueOrderCommandHandler(c.createUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateUndiscontinueOrderCommandHandler() commands.UndiscontinueOrderCommandHandler {
	return commands.NewUndiscontinueOrderCommandHandler(c.createUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateResyncWorklistCommandHandler() commands.ResyncWorklistCommandHandler {
	var f commands.StudyUoWFactory = FuncStudyUoWFactory(func() commands.StudyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResyncWorklistCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetOrderFormQueryHandler() queries.GetOrderFormQueryHandler {
	return queries.NewGetOrderFormQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncStudyUoWFactory func() commands.StudyUoW

func (f FuncStudyUoWFactory) Create() commands.StudyUoW {
	return f()
}
