package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	b64 "encoding/base64"
	"fmt"
	"strings"

	"loungepass/config"
	"loungepass/infras/otel"
	"loungepass/infras/s3"
	"loungepass/internal/domains/lounge/model"
	"loungepass/internal/domains/lounge/model/dto"
	"loungepass/internal/domains/lounge/repository"
	"loungepass/shared"
	"loungepass/shared/base64"
	"loungepass/shared/cache"
	"loungepass/shared/constant"
	gDto "loungepass/shared/dto"
	"loungepass/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetLounge    = "lounge:get"
	cacheGetAllLounge = "lounge:gets"
	cacheCountLounge  = "lounge:count"
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
}

type Lounge interface {
	Create(ctx context.Context, req dto.CreateLoungeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLoungesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.LoungeResponse, error)
	GetModel(ctx context.Context, id string) (model.Lounge, error)
	Update(ctx context.Context, req dto.UpdateLoungeRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, req dto.DeleteImageRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Lounge
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Lounge, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Lounge {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLoungeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeySessionID).(string)

	price, err := decimal.NewFromString(req.PricePerGuest)
	if err != nil {
		return failure.BadRequestFromString("price_per_guest must be a decimal amount") // nolint:wrapcheck
	}

	if req.CloseTime <= req.OpenTime {
		return failure.BadRequestFromString("close_time must be after open_time") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, price)); err != nil {
		log.Error().Err(err).Msg("failed to create lounge")

		return fmt.Errorf("failed to create lounge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLounge)
		shared.InvalidateCaches(c, s.cache, cacheCountLounge)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLoungesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLounge, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lounges")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count lounges")

		return res, failure.DataUnavailable("lounge catalog unavailable") // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lounges")

		return res, failure.DataUnavailable("lounge catalog unavailable") // nolint:wrapcheck
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lounges to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLounge, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lounge count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count lounges")

		return res, fmt.Errorf("failed to count lounges: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lounge count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LoungeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetLounge, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lounge")

		return res, nil
	}

	lounge, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(lounge)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lounge to cache")
		}
	}()

	return res, nil
}

// GetModel fetches the raw lounge row. Draft and booking flows need the
// untransformed opening hours and price.
func (s *serviceImpl) GetModel(ctx context.Context, id string) (res model.Lounge, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	lounge, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lounge")

		return res, failure.DataUnavailable("lounge catalog unavailable") // nolint:wrapcheck
	}

	if lounge.ID == constant.Empty {
		return res, failure.NotFound("lounge not found") // nolint:wrapcheck
	}

	return lounge, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLoungeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeySessionID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lounge exists")

		return fmt.Errorf("failed to check if lounge exists: %w", err)
	}

	if !exist {
		log.Error().Msg("lounge not found")

		return failure.NotFound("lounge not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if req.Amenities != nil {
		updatedFields[model.FieldAmenities] = pq.StringArray(req.Amenities)
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update lounge")

		return fmt.Errorf("failed to update lounge: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lounge exists")

		return fmt.Errorf("failed to check if lounge exists: %w", err)
	}

	if !exist {
		log.Error().Msg("lounge not found")

		return failure.NotFound("lounge not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete lounge")

		return fmt.Errorf("failed to delete lounge: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	lounge, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lounge")

		return res, fmt.Errorf("failed to get lounge: %w", err)
	}

	if lounge.ID == constant.Empty {
		return res, failure.NotFound("lounge not found") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.Image)

	fileData, err := b64.StdEncoding.DecodeString(base64.StripPrefix(req.Image))
	if err != nil {
		return res, failure.BadRequestFromString("image must be a valid base64 payload") // nolint:wrapcheck
	}

	fileName := uuid.NewString()
	if ext, ok := imageExtensions[contentType]; ok {
		fileName = fmt.Sprintf("%s.%s", fileName, ext)
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFileBytes(ctx, bucketName, model.EntityName, fileName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload lounge image to S3")

		return res, fmt.Errorf("failed to upload lounge image: %w", err)
	}

	images := append(lounge.Images, url)
	if err = s.repo.Update(ctx, map[string]any{model.FieldImages: images}, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach image to lounge")

		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, fileName)

		return res, fmt.Errorf("failed to attach image to lounge: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(url, fileName)

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, req dto.DeleteImageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	lounge, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lounge")

		return fmt.Errorf("failed to get lounge: %w", err)
	}

	if lounge.ID == constant.Empty {
		return failure.NotFound("lounge not found") // nolint:wrapcheck
	}

	images := pq.StringArray{}
	found := false
	for _, img := range lounge.Images {
		if img == req.ImageURL {
			found = true
			continue
		}

		images = append(images, img)
	}

	if !found {
		return failure.NotFound("image not found on lounge") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldImages: images}, filter); err != nil {
		log.Error().Err(err).Msg("failed to detach image from lounge")

		return fmt.Errorf("failed to detach image from lounge: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName

	objectName := s.s3.GetObjectNameFromURL(bucketName, req.ImageURL)
	if objectName != constant.Empty {
		objectName = strings.TrimPrefix(objectName, model.EntityName+"/")
		if err := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Msg("failed to delete lounge image from S3")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLounge, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete lounge cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllLounge)
		shared.InvalidateCaches(c, s.cache, cacheCountLounge)
	}()
}
