package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"loungepass/infras/otel"
	"loungepass/infras/postgres"
	"loungepass/internal/domains/lounge/model"
	gDto "loungepass/shared/dto"
	gRepo "loungepass/shared/repository"
)

type Lounge interface {
	Insert(ctx context.Context, model model.Lounge) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Lounge, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Lounge, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Lounge]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Lounge {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Lounge](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
