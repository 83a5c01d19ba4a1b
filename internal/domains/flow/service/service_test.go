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
	otelMocks "loungepass/infras/otel/mocks"
	bookingDto "loungepass/internal/domains/booking/model/dto"
	bookingMocks "loungepass/internal/domains/booking/service/mocks"
	draftModel "loungepass/internal/domains/draft/model"
	draftMocks "loungepass/internal/domains/draft/service/mocks"
	"loungepass/internal/domains/flow/model"
	"loungepass/internal/domains/flow/model/dto"
	"loungepass/internal/domains/flow/service"
	loungeModel "loungepass/internal/domains/lounge/model"
	loungeMocks "loungepass/internal/domains/lounge/service/mocks"
	cacheMocks "loungepass/shared/cache/mocks"
	"loungepass/shared/failure"
)

const sessionID = "2f1a9f3e-5b7e-4c62-8a43-1d2a90e07d55"

type navigatorMocks struct {
	lounges  *loungeMocks.MockLounge
	drafts   *draftMocks.MockDraft
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
}

func newNavigator(t *testing.T) (service.Navigator, navigatorMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := navigatorMocks{
		lounges:  loungeMocks.NewMockLounge(ctrl),
		drafts:   draftMocks.NewMockDraft(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Session.NavTTL = 1800

	svc := service.New(mocks.lounges, mocks.drafts, mocks.bookings, cfg, mocks.cache, mockOtel)

	return svc, mocks
}

func expectStoredRoute(mockCache *cacheMocks.MockRedisCache, route model.Route) {
	mockCache.EXPECT().
		Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*model.Route)) = route
			return nil
		})
}

func TestNavigatorService_Resolve(t *testing.T) {
	svc, mocks := newNavigator(t)

	tests := []struct {
		name           string
		path           string
		setupMock      func()
		wantErr        bool
		wantCode       int
		wantBackground string
		wantOverlay    string
		wantReference  string
	}{
		{
			name: "plain route becomes the background",
			path: "/airports/lhr/lounges",
			setupMock: func() {
				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/airports/lhr/lounges",
			wantOverlay:    "none",
		},
		{
			name: "booking overlay keeps the stored background",
			path: "/lounges/abc/book",
			setupMock: func() {
				expectStoredRoute(mocks.cache, model.Route{Kind: model.RouteLoungeDetail, LoungeID: "abc"})
			},
			wantBackground: "/lounges/abc",
			wantOverlay:    "booking",
		},
		{
			name: "deep-linked booking overlay backs onto the lounge list",
			path: "/lounges/abc/book",
			setupMock: func() {
				mocks.cache.EXPECT().
					Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
					Return(errors.New("cache miss"))

				mocks.lounges.EXPECT().
					GetModel(gomock.Any(), "abc").
					Return(loungeModel.Lounge{ID: "abc", AirportID: "lhr", PricePerGuest: decimal.NewFromInt(65)}, nil)

				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/airports/lhr/lounges",
			wantOverlay:    "booking",
		},
		{
			name: "deep-linked booking overlay on unknown lounge fails",
			path: "/lounges/ghost/book",
			setupMock: func() {
				mocks.cache.EXPECT().
					Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
					Return(errors.New("cache miss"))

				mocks.lounges.EXPECT().
					GetModel(gomock.Any(), "ghost").
					Return(loungeModel.Lounge{}, failure.NotFound("lounge not found"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "deep-linked checkout backs onto the draft airport",
			path: "/checkout",
			setupMock: func() {
				mocks.cache.EXPECT().
					Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
					Return(errors.New("cache miss"))

				mocks.drafts.EXPECT().
					GetModel(gomock.Any(), sessionID).
					Return(draftModel.Draft{AirportID: "jfk"}, nil)

				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/airports/jfk/lounges",
			wantOverlay:    "checkout",
		},
		{
			name: "deep-linked checkout without draft backs onto airport select",
			path: "/checkout",
			setupMock: func() {
				mocks.cache.EXPECT().
					Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
					Return(errors.New("cache miss"))

				mocks.drafts.EXPECT().
					GetModel(gomock.Any(), sessionID).
					Return(draftModel.Draft{}, failure.NotFound("no booking in progress"))

				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/airports",
			wantOverlay:    "checkout",
		},
		{
			name: "confirmation with reference passes through",
			path: "/confirmation/LNG-A2B3C4D5",
			setupMock: func() {
				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/confirmation/LNG-A2B3C4D5",
			wantOverlay:    "none",
			wantReference:  "LNG-A2B3C4D5",
		},
		{
			name: "confirmation without reference uses the active booking",
			path: "/confirmation",
			setupMock: func() {
				mocks.bookings.EXPECT().
					GetActive(gomock.Any(), sessionID).
					Return(bookingDto.BookingResponse{Reference: "LNG-F6G7H2J3"}, nil)

				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/confirmation/LNG-F6G7H2J3",
			wantOverlay:    "none",
			wantReference:  "LNG-F6G7H2J3",
		},
		{
			name: "confirmation without any booking redirects to airport select",
			path: "/confirmation",
			setupMock: func() {
				mocks.bookings.EXPECT().
					GetActive(gomock.Any(), sessionID).
					Return(bookingDto.BookingResponse{}, failure.NotFound("no active booking"))

				mocks.cache.EXPECT().
					Save(gomock.Any(), "nav:"+sessionID, gomock.Any(), 1800).
					Return(nil)
			},
			wantBackground: "/airports",
			wantOverlay:    "none",
		},
		{
			name:      "unknown path is rejected",
			path:      "/profile",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Resolve(context.Background(), sessionID, dto.ResolveRequest{Path: tt.path})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantBackground, result.Background)
				assert.Equal(t, tt.wantOverlay, result.Overlay)
				assert.Equal(t, tt.wantReference, result.Reference)
			}
		})
	}
}

func TestNavigatorService_CloseOverlay(t *testing.T) {
	svc, mocks := newNavigator(t)

	tests := []struct {
		name           string
		setupMock      func()
		wantBackground string
	}{
		{
			name: "returns the stored background",
			setupMock: func() {
				expectStoredRoute(mocks.cache, model.Route{Kind: model.RouteLoungeDetail, LoungeID: "abc"})
			},
			wantBackground: "/lounges/abc",
		},
		{
			name: "falls back to home without stored state",
			setupMock: func() {
				mocks.cache.EXPECT().
					Get(gomock.Any(), "nav:"+sessionID, gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantBackground: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CloseOverlay(context.Background(), sessionID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantBackground, result.Background)
			assert.Equal(t, "none", result.Overlay)
		})
	}
}
