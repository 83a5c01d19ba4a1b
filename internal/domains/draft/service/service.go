package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"loungepass/config"
	"loungepass/infras/otel"
	"loungepass/internal/domains/draft/model"
	"loungepass/internal/domains/draft/model/dto"
	loungeService "loungepass/internal/domains/lounge/service"
	"loungepass/shared"
	"loungepass/shared/cache"
	"loungepass/shared/constant"
	"loungepass/shared/failure"
	"loungepass/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheDraft = "draft"
)

type Draft interface {
	Start(ctx context.Context, sessionID string, req dto.StartDraftRequest) (dto.DraftResponse, error)
	Get(ctx context.Context, sessionID string) (dto.DraftResponse, error)
	GetModel(ctx context.Context, sessionID string) (model.Draft, error)
	UpdateGuests(ctx context.Context, sessionID string, req dto.UpdateGuestsRequest) (dto.DraftResponse, error)
	UpdateSchedule(ctx context.Context, sessionID string, req dto.UpdateScheduleRequest) (dto.DraftResponse, error)
	Advance(ctx context.Context, sessionID string) (dto.DraftResponse, error)
	Back(ctx context.Context, sessionID string) (dto.DraftResponse, error)
	Confirm(ctx context.Context, sessionID string) (model.Draft, error)
	Clear(ctx context.Context, sessionID string) error
	ClearIfCurrent(ctx context.Context, sessionID, draftID string) error
}

type serviceImpl struct {
	lounges loungeService.Lounge
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(lounges loungeService.Lounge, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Draft {
	return &serviceImpl{
		lounges: lounges,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Start replaces any existing draft for the session with a fresh one
// built from the lounge snapshot.
func (s *serviceImpl) Start(ctx context.Context, sessionID string, req dto.StartDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	lounge, err := s.lounges.GetModel(ctx, req.LoungeID)
	if err != nil {
		return res, err
	}

	draft := dto.NewDraft(sessionID, lounge)

	if err = s.save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sessionID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDraft")
	defer scope.End()
	defer scope.TraceIfError(nil)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDraftModel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheDraft, sessionID), &draft)
	if err != nil {
		return draft, failure.NotFound("no booking in progress") // nolint:wrapcheck
	}

	return draft, nil
}

func (s *serviceImpl) UpdateGuests(ctx context.Context, sessionID string, req dto.UpdateGuestsRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDraftGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return res, err
	}

	if req.Guests < constant.MinGuests || req.Guests > constant.MaxGuests {
		return res, failure.Validation(fmt.Sprintf("guests must be between %d and %d", constant.MinGuests, constant.MaxGuests)) // nolint:wrapcheck
	}

	draft.Guests = req.Guests
	draft.RecalculateTotal()
	draft.ModifiedAt = timezone.Now()

	if err = s.save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) UpdateSchedule(ctx context.Context, sessionID string, req dto.UpdateScheduleRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDraftSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return res, err
	}

	date, err := timezone.Parse(constant.BookingDateFormat, req.Date)
	if err != nil {
		return res, failure.Validation("date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if date.Before(timezone.Today()) {
		return res, failure.Validation("date must not be in the past") // nolint:wrapcheck
	}

	if req.Time < draft.OpenTime || req.Time > draft.CloseTime {
		return res, failure.Validation(fmt.Sprintf("time must fall within lounge opening hours (%s-%s)", draft.OpenTime, draft.CloseTime)) // nolint:wrapcheck
	}

	draft.Date = req.Date
	draft.Time = req.Time
	draft.ModifiedAt = timezone.Now()

	if err = s.save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Advance(ctx context.Context, sessionID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdvanceDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return res, err
	}

	next, ok := draft.Step.Next()
	if !ok {
		return res, failure.Validation("booking is already confirmed") // nolint:wrapcheck
	}

	// Confirmation is reached through checkout only.
	if next == model.StepConfirmed {
		return res, failure.Validation("complete checkout to confirm the booking") // nolint:wrapcheck
	}

	if next == model.StepReviewAndPay && !draft.Complete() {
		return res, failure.Validation("date and time must be selected before review") // nolint:wrapcheck
	}

	draft.Step = next
	draft.ModifiedAt = timezone.Now()

	if err = s.save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Back(ctx context.Context, sessionID string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BackDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return res, err
	}

	prev, ok := draft.Step.Prev()
	if !ok {
		return res, failure.Validation("cannot go back from the current step") // nolint:wrapcheck
	}

	draft.Step = prev
	draft.ModifiedAt = timezone.Now()

	if err = s.save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

// Confirm validates completeness, marks the draft confirmed and returns
// the snapshot checkout persists. The draft itself stays put until the
// booking row is written.
func (s *serviceImpl) Confirm(ctx context.Context, sessionID string) (draft model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err = s.GetModel(ctx, sessionID)
	if err != nil {
		return draft, err
	}

	if !draft.Complete() {
		return draft, failure.Validation("guests, date and time must be selected before checkout") // nolint:wrapcheck
	}

	draft.Step = model.StepConfirmed

	return draft, nil
}

func (s *serviceImpl) Clear(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearDraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheDraft, sessionID)); err != nil {
		log.Error().Err(err).Msg("failed to clear draft")

		return failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	return nil
}

// ClearIfCurrent removes the session draft only when it still is the one
// identified by draftID. A draft restarted mid-checkout stays untouched.
func (s *serviceImpl) ClearIfCurrent(ctx context.Context, sessionID, draftID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearDraftIfCurrent")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.GetModel(ctx, sessionID)
	if err != nil {
		return nil
	}

	if draft.ID != draftID {
		log.Info().Str("sessionID", sessionID).Msg("draft changed since checkout started, keeping it")

		return nil
	}

	return s.Clear(ctx, sessionID)
}

func (s *serviceImpl) save(ctx context.Context, draft model.Draft) error {
	key := shared.BuildCacheKey(cacheDraft, draft.SessionID)

	if err := s.cache.Save(ctx, key, draft, s.cfg.Session.DraftTTL); err != nil {
		log.Error().Err(err).Msg("failed to save draft")

		return failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	return nil
}
