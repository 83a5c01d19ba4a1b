package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"loungepass/infras/otel"
	"loungepass/infras/postgres"
	"loungepass/internal/domains/airport/model"
	gDto "loungepass/shared/dto"
	gRepo "loungepass/shared/repository"
)

type Airport interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Airport, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Airport, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Airport]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Airport {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Airport](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
