package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"loungepass/config"
	"loungepass/infras/jwt"
	"loungepass/infras/kafka"
	"loungepass/infras/otel"
	"loungepass/internal/domains/booking/model"
	"loungepass/internal/domains/booking/model/dto"
	"loungepass/internal/domains/booking/repository"
	draftService "loungepass/internal/domains/draft/service"
	"loungepass/shared"
	"loungepass/shared/cache"
	"loungepass/shared/constant"
	"loungepass/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheActiveBooking = "booking:active"
	cacheFinalizeLock  = "booking:lock"

	referenceRandomBytes = 5
)

type Booking interface {
	Finalize(ctx context.Context, sessionID string, req dto.FinalizeRequest) (dto.BookingResponse, error)
	GetActive(ctx context.Context, sessionID string) (dto.BookingResponse, error)
	ClearActive(ctx context.Context, sessionID string) error
	GetByReference(ctx context.Context, reference string) (dto.BookingResponse, error)
	VerifyPass(ctx context.Context, token string) (dto.VerifyPassResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	drafts draftService.Draft
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	kafka  kafka.Client
	pass   jwt.Pass
}

func New(repo repository.Booking, drafts draftService.Draft, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client, pass jwt.Pass) Booking {
	return &serviceImpl{
		repo:   repo,
		drafts: drafts,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		kafka:  kafka,
		pass:   pass,
	}
}

// Finalize turns the session draft into a booking row. The per-session
// lock absorbs double submits from the payment button; the draft is only
// cleared after the row is safely written, so a failed write leaves the
// checkout intact for a retry.
func (s *serviceImpl) Finalize(ctx context.Context, sessionID string, req dto.FinalizeRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FinalizeBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	lockKey := shared.BuildCacheKey(cacheFinalizeLock, sessionID)

	acquired, err := s.cache.SaveIfAbsent(ctx, lockKey, "1", s.cfg.Session.FinalizeLock)
	if err != nil {
		log.Error().Err(err).Msg("failed to acquire finalize lock")

		return res, failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	if !acquired {
		return res, failure.CheckoutInProgressError // nolint:wrapcheck
	}

	draft, err := s.drafts.Confirm(ctx, sessionID)
	if err != nil {
		s.releaseLock(ctx, lockKey)

		return res, err
	}

	reference, err := s.generateReference()
	if err != nil {
		s.releaseLock(ctx, lockKey)

		return res, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := req.ToModel(draft, reference)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		s.releaseLock(ctx, lockKey)

		return res, failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheActiveBooking, sessionID), booking, s.cfg.Session.BookingTTL); err != nil {
		log.Error().Err(err).Msg("failed to save active booking")
	}

	if err := s.drafts.ClearIfCurrent(ctx, sessionID, draft.ID); err != nil {
		log.Error().Err(err).Msg("failed to clear draft after finalize")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := kafka.Message{
			Key:   booking.Reference,
			Value: dto.NewBookingConfirmedEvent(booking),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingEventsTopic, event); err != nil {
			log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to publish booking confirmed event")
		}
	}()

	s.releaseLock(ctx, lockKey)

	res.FromModel(booking)
	s.attachPass(&res, booking)

	return res, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, sessionID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActiveBooking")
	defer scope.End()
	defer scope.TraceIfError(nil)

	var booking model.Booking

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheActiveBooking, sessionID), &booking)
	if err != nil {
		return res, failure.NotFound("no active booking") // nolint:wrapcheck
	}

	res.FromModel(booking)
	s.attachPass(&res, booking)

	return res, nil
}

func (s *serviceImpl) ClearActive(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearActiveBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheActiveBooking, sessionID)); err != nil {
		log.Error().Err(err).Msg("failed to clear active booking")

		return failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingByReference")
	defer scope.End()
	defer scope.TraceIfError(nil)

	booking, err := s.repo.Get(ctx, dto.ReferenceFilter(reference))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)
	s.attachPass(&res, booking)

	return res, nil
}

// VerifyPass checks a scanned QR token: signature first, then that the
// referenced booking actually exists.
func (s *serviceImpl) VerifyPass(ctx context.Context, token string) (res dto.VerifyPassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPass")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.pass.Validate(token)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, dto.ReferenceFilter(claims.Reference))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return res, failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res = dto.VerifyPassResponse{
		Valid:      true,
		Reference:  claims.Reference,
		LoungeName: claims.LoungeName,
		Date:       claims.Date,
		Guests:     claims.Guests,
	}

	return res, nil
}

func (s *serviceImpl) attachPass(res *dto.BookingResponse, booking model.Booking) {
	token, err := s.pass.Generate(booking.Reference, booking.LoungeID, booking.LoungeName, booking.Date, booking.Guests)
	if err != nil {
		log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to generate pass token")

		return
	}

	res.PassToken = token
	res.QRURL = fmt.Sprintf("%s?token=%s", s.cfg.Booking.QRBaseURL, token)
}

func (s *serviceImpl) generateReference() (string, error) {
	buf := make([]byte, referenceRandomBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return fmt.Sprintf("%s-%s", s.cfg.Booking.ReferencePrefix, base32.StdEncoding.EncodeToString(buf)), nil
}

func (s *serviceImpl) releaseLock(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		log.Error().Err(err).Msg("failed to release finalize lock")
	}
}
