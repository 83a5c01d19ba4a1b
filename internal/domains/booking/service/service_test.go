package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"loungepass/config"
	"loungepass/infras/jwt"
	jwtMocks "loungepass/infras/jwt/mocks"
	kafkaMocks "loungepass/infras/kafka/mocks"
	otelMocks "loungepass/infras/otel/mocks"
	bookingMocks "loungepass/internal/domains/booking/mocks"
	"loungepass/internal/domains/booking/model"
	"loungepass/internal/domains/booking/model/dto"
	"loungepass/internal/domains/booking/service"
	draftModel "loungepass/internal/domains/draft/model"
	draftMocks "loungepass/internal/domains/draft/service/mocks"
	cacheMocks "loungepass/shared/cache/mocks"
	"loungepass/shared/failure"
)

const sessionID = "2f1a9f3e-5b7e-4c62-8a43-1d2a90e07d55"

type bookingMockSet struct {
	repo   *bookingMocks.MockBooking
	drafts *draftMocks.MockDraft
	cache  *cacheMocks.MockRedisCache
	kafka  *kafkaMocks.MockClient
	pass   *jwtMocks.MockPass
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := bookingMockSet{
		repo:   bookingMocks.NewMockBooking(ctrl),
		drafts: draftMocks.NewMockDraft(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
		pass:   jwtMocks.NewMockPass(ctrl),
	}

	cfg := &config.Config{}
	cfg.Session.BookingTTL = 86400
	cfg.Session.FinalizeLock = 30
	cfg.Booking.ReferencePrefix = "LNG"
	cfg.Booking.QRBaseURL = "https://pass.loungepass.app/verify"
	cfg.Kafka.BookingEventsTopic = "booking-events"

	svc := service.New(mocks.repo, mocks.drafts, cfg, mocks.cache, otelMocks.NewOtel(), mocks.kafka, mocks.pass)

	return svc, mocks
}

func confirmedDraft() draftModel.Draft {
	return draftModel.Draft{
		ID:            "8cf0c5ba-40a2-4a29-8bfb-6f4a5b2a1d77",
		SessionID:     sessionID,
		LoungeID:      "e9c9de6a-ef6b-4b2f-8c1f-0a4c3a3a8f11",
		LoungeName:    "Aurora Lounge",
		Terminal:      "T5",
		AirportID:     "lhr",
		OpenTime:      "06:00",
		CloseTime:     "22:00",
		Guests:        2,
		Date:          "2026-09-15",
		Time:          "10:00",
		PricePerGuest: decimal.NewFromInt(65),
		Currency:      "USD",
		Total:         decimal.NewFromInt(130),
		Step:          draftModel.StepConfirmed,
	}
}

func TestBookingService_Finalize(t *testing.T) {
	req := dto.FinalizeRequest{
		FirstName: "Alex",
		LastName:  "Tan",
		Email:     "alex@example.com",
		Phone:     "+44 7700 900123",
	}

	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful finalize",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					SaveIfAbsent(gomock.Any(), "booking:lock:"+sessionID, gomock.Any(), 30).
					Return(true, nil)

				m.drafts.EXPECT().
					Confirm(gomock.Any(), sessionID).
					Return(confirmedDraft(), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "Alex", booking.FirstName)
						assert.Equal(t, "Tan", booking.LastName)
						assert.Equal(t, "alex@example.com", booking.Email)
						assert.Equal(t, "+44 7700 900123", booking.Phone)
						return nil
					})

				m.cache.EXPECT().
					Save(gomock.Any(), "booking:active:"+sessionID, gomock.Any(), 86400).
					Return(nil)

				m.drafts.EXPECT().
					ClearIfCurrent(gomock.Any(), sessionID, confirmedDraft().ID).
					Return(nil)

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), "booking-events", gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Delete(gomock.Any(), "booking:lock:"+sessionID).
					Return(nil)

				m.pass.EXPECT().
					Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("signed-token", nil)
			},
			wantErr: false,
		},
		{
			name: "double submit is rejected",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "incomplete draft releases the lock",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.drafts.EXPECT().
					Confirm(gomock.Any(), sessionID).
					Return(draftModel.Draft{}, failure.Validation("guests, date and time must be selected before checkout"))

				m.cache.EXPECT().
					Delete(gomock.Any(), "booking:lock:"+sessionID).
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert failure keeps the draft",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.drafts.EXPECT().
					Confirm(gomock.Any(), sessionID).
					Return(confirmedDraft(), nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))

				m.cache.EXPECT().
					Delete(gomock.Any(), "booking:lock:"+sessionID).
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			result, err := svc.Finalize(context.Background(), sessionID, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Regexp(t, "^LNG-[A-Z2-7]{8}$", result.Reference)
				assert.Equal(t, "Alex", result.FirstName)
				assert.Equal(t, "Tan", result.LastName)
				assert.Equal(t, "confirmed", result.Status)
				assert.Equal(t, "130.00", result.Total)
				assert.Equal(t, "signed-token", result.PassToken)
				assert.Equal(t, "https://pass.loungepass.app/verify?token=signed-token", result.QRURL)
			}
		})
	}
}

func TestBookingService_GetActive(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "active booking found",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), "booking:active:"+sessionID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*model.Booking)) = model.Booking{
							ID:        "booking-id",
							Reference: "LNG-A1B2C3D4",
							Status:    model.StatusConfirmed,
						}
						return nil
					})

				m.pass.EXPECT().
					Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("signed-token", nil)
			},
			wantErr: false,
		},
		{
			name: "no active booking",
			setupMock: func(m bookingMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			result, err := svc.GetActive(context.Background(), sessionID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "LNG-A1B2C3D4", result.Reference)
			}
		})
	}
}

func TestBookingService_GetByReference(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "booking found",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", Reference: "LNG-A1B2C3D4"}, nil)

				m.pass.EXPECT().
					Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("signed-token", nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			result, err := svc.GetByReference(context.Background(), "LNG-A1B2C3D4")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "LNG-A1B2C3D4", result.Reference)
			}
		})
	}
}

func TestBookingService_VerifyPass(t *testing.T) {
	claims := &jwt.PassClaims{
		Reference:  "LNG-A1B2C3D4",
		LoungeName: "Aurora Lounge",
		Date:       "2026-09-15",
		Guests:     2,
	}

	tests := []struct {
		name      string
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "valid pass",
			setupMock: func(m bookingMockSet) {
				m.pass.EXPECT().
					Validate("token").
					Return(claims, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid token",
			setupMock: func(m bookingMockSet) {
				m.pass.EXPECT().
					Validate("token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "expired token",
			setupMock: func(m bookingMockSet) {
				m.pass.EXPECT().
					Validate("token").
					Return(nil, jwt.ErrExpiredToken)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking no longer exists",
			setupMock: func(m bookingMockSet) {
				m.pass.EXPECT().
					Validate("token").
					Return(claims, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			result, err := svc.VerifyPass(context.Background(), "token")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Valid)
				assert.Equal(t, claims.Reference, result.Reference)
				assert.Equal(t, claims.Guests, result.Guests)
			}
		})
	}
}
