package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"loungepass/config"
	otelMocks "loungepass/infras/otel/mocks"
	"loungepass/internal/domains/draft/model"
	"loungepass/internal/domains/draft/model/dto"
	"loungepass/internal/domains/draft/service"
	loungeModel "loungepass/internal/domains/lounge/model"
	loungeMocks "loungepass/internal/domains/lounge/service/mocks"
	cacheMocks "loungepass/shared/cache/mocks"
	"loungepass/shared/constant"
	"loungepass/shared/failure"
)

const sessionID = "2f1a9f3e-5b7e-4c62-8a43-1d2a90e07d55"

func newDraftService(t *testing.T) (service.Draft, *loungeMocks.MockLounge, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockLounges := loungeMocks.NewMockLounge(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Session.DraftTTL = 1800

	svc := service.New(mockLounges, cfg, mockCache, mockOtel)

	return svc, mockLounges, mockCache
}

func sampleDraft() model.Draft {
	return model.Draft{
		ID:            "8cf0c5ba-40a2-4a29-8bfb-6f4a5b2a1d77",
		SessionID:     sessionID,
		LoungeID:      "e9c9de6a-ef6b-4b2f-8c1f-0a4c3a3a8f11",
		LoungeName:    "Aurora Lounge",
		Terminal:      "T5",
		AirportID:     "lhr",
		OpenTime:      "06:00",
		CloseTime:     "22:00",
		Guests:        1,
		PricePerGuest: decimal.NewFromInt(65),
		Currency:      "USD",
		Total:         decimal.NewFromInt(65),
		Step:          model.StepGuestSelection,
	}
}

func expectDraftInCache(mockCache *cacheMocks.MockRedisCache, draft model.Draft) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*model.Draft)) = draft
			return nil
		})
}

func TestDraftService_Start(t *testing.T) {
	svc, mockLounges, mockCache := newDraftService(t)

	lounge := loungeModel.Lounge{
		ID:            "e9c9de6a-ef6b-4b2f-8c1f-0a4c3a3a8f11",
		AirportID:     "lhr",
		Name:          "Aurora Lounge",
		Terminal:      "T5",
		OpenTime:      "06:00",
		CloseTime:     "22:00",
		PricePerGuest: decimal.NewFromInt(65),
		Currency:      "USD",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful start",
			setupMock: func() {
				mockLounges.EXPECT().
					GetModel(gomock.Any(), lounge.ID).
					Return(lounge, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "draft:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "lounge not found",
			setupMock: func() {
				mockLounges.EXPECT().
					GetModel(gomock.Any(), lounge.ID).
					Return(loungeModel.Lounge{}, failure.NotFound("lounge not found"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "save error",
			setupMock: func() {
				mockLounges.EXPECT().
					GetModel(gomock.Any(), lounge.ID).
					Return(lounge, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Start(context.Background(), sessionID, dto.StartDraftRequest{LoungeID: lounge.ID})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.Guests)
				assert.Equal(t, "65.00", result.Total)
				assert.Equal(t, string(model.StepGuestSelection), result.Step)
				assert.Empty(t, result.Date)
				assert.Empty(t, result.Time)
			}
		})
	}
}

func TestDraftService_UpdateGuests(t *testing.T) {
	svc, _, mockCache := newDraftService(t)

	tests := []struct {
		name      string
		guests    int
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTotal string
	}{
		{
			name:   "recalculates total for three guests",
			guests: 3,
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTotal: "195.00",
		},
		{
			name:   "recalculates total for two guests",
			guests: 2,
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTotal: "130.00",
		},
		{
			name:   "rejects zero guests",
			guests: 0,
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "rejects more than ten guests",
			guests: 11,
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "no draft in progress",
			guests: 2,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UpdateGuests(context.Background(), sessionID, dto.UpdateGuestsRequest{Guests: tt.guests})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.guests, result.Guests)
				assert.Equal(t, tt.wantTotal, result.Total)
			}
		})
	}
}

func TestDraftService_UpdateSchedule(t *testing.T) {
	svc, _, mockCache := newDraftService(t)

	futureDate := time.Now().AddDate(0, 0, 7).Format(constant.BookingDateFormat)
	pastDate := time.Now().AddDate(0, 0, -1).Format(constant.BookingDateFormat)

	tests := []struct {
		name      string
		req       dto.UpdateScheduleRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "accepts time inside opening hours",
			req:  dto.UpdateScheduleRequest{Date: futureDate, Time: "21:30"},
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rejects time after closing",
			req:  dto.UpdateScheduleRequest{Date: futureDate, Time: "23:00"},
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "rejects time before opening",
			req:  dto.UpdateScheduleRequest{Date: futureDate, Time: "05:30"},
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "rejects past date",
			req:  dto.UpdateScheduleRequest{Date: pastDate, Time: "10:00"},
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UpdateSchedule(context.Background(), sessionID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Date, result.Date)
				assert.Equal(t, tt.req.Time, result.Time)
			}
		})
	}
}

func TestDraftService_Advance(t *testing.T) {
	svc, _, mockCache := newDraftService(t)

	scheduled := sampleDraft()
	scheduled.Step = model.StepDateTimeSelection
	scheduled.Date = "2026-09-15"
	scheduled.Time = "10:00"

	unscheduled := sampleDraft()
	unscheduled.Step = model.StepDateTimeSelection

	review := sampleDraft()
	review.Step = model.StepReviewAndPay
	review.Date = "2026-09-15"
	review.Time = "10:00"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantStep  string
	}{
		{
			name: "guest selection advances to schedule",
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStep: string(model.StepDateTimeSelection),
		},
		{
			name: "schedule advances to review once set",
			setupMock: func() {
				expectDraftInCache(mockCache, scheduled)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStep: string(model.StepReviewAndPay),
		},
		{
			name: "schedule cannot advance without date and time",
			setupMock: func() {
				expectDraftInCache(mockCache, unscheduled)
			},
			wantErr: true,
		},
		{
			name: "review cannot advance without checkout",
			setupMock: func() {
				expectDraftInCache(mockCache, review)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Advance(context.Background(), sessionID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStep, result.Step)
			}
		})
	}
}

func TestDraftService_Back(t *testing.T) {
	svc, _, mockCache := newDraftService(t)

	review := sampleDraft()
	review.Step = model.StepReviewAndPay

	confirmed := sampleDraft()
	confirmed.Step = model.StepConfirmed

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantStep  string
	}{
		{
			name: "review goes back to schedule",
			setupMock: func() {
				expectDraftInCache(mockCache, review)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStep: string(model.StepDateTimeSelection),
		},
		{
			name: "first step has nowhere to go back to",
			setupMock: func() {
				expectDraftInCache(mockCache, sampleDraft())
			},
			wantErr: true,
		},
		{
			name: "confirmed cannot be left",
			setupMock: func() {
				expectDraftInCache(mockCache, confirmed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Back(context.Background(), sessionID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStep, result.Step)
			}
		})
	}
}

func TestDraftService_ClearIfCurrent(t *testing.T) {
	svc, _, mockCache := newDraftService(t)

	draft := sampleDraft()

	tests := []struct {
		name      string
		draftID   string
		setupMock func()
	}{
		{
			name:    "clears the matching draft",
			draftID: draft.ID,
			setupMock: func() {
				expectDraftInCache(mockCache, draft)

				mockCache.EXPECT().
					Delete(gomock.Any(), "draft:"+sessionID).
					Return(nil)
			},
		},
		{
			name:    "keeps a draft restarted mid checkout",
			draftID: "some-other-draft",
			setupMock: func() {
				expectDraftInCache(mockCache, draft)
			},
		},
		{
			name:    "no draft left is a no-op",
			draftID: draft.ID,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ClearIfCurrent(context.Background(), sessionID, tt.draftID)

			assert.NoError(t, err)
		})
	}
}
