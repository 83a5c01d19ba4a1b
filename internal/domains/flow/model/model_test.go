package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loungepass/internal/domains/flow/model"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    model.Route
		wantErr bool
	}{
		{
			name: "root",
			path: "/",
			want: model.Route{Kind: model.RouteHome},
		},
		{
			name: "onboarding",
			path: "/onboarding",
			want: model.Route{Kind: model.RouteOnboarding},
		},
		{
			name: "airport select",
			path: "/airports",
			want: model.Route{Kind: model.RouteAirportSelect},
		},
		{
			name: "lounge list",
			path: "/airports/lhr/lounges",
			want: model.Route{Kind: model.RouteLoungeList, AirportID: "lhr"},
		},
		{
			name: "lounge detail",
			path: "/lounges/abc-123",
			want: model.Route{Kind: model.RouteLoungeDetail, LoungeID: "abc-123"},
		},
		{
			name: "booking overlay",
			path: "/lounges/abc-123/book",
			want: model.Route{Kind: model.RouteBookingOverlay, LoungeID: "abc-123"},
		},
		{
			name: "checkout overlay",
			path: "/checkout",
			want: model.Route{Kind: model.RouteCheckoutOverlay},
		},
		{
			name: "confirmation without reference",
			path: "/confirmation",
			want: model.Route{Kind: model.RouteConfirmation},
		},
		{
			name: "confirmation with reference",
			path: "/confirmation/LNG-A1B2C3D4",
			want: model.Route{Kind: model.RouteConfirmation, Reference: "LNG-A1B2C3D4"},
		},
		{
			name: "trailing slash is tolerated",
			path: "/airports/",
			want: model.Route{Kind: model.RouteAirportSelect},
		},
		{
			name:    "unknown path",
			path:    "/profile",
			wantErr: true,
		},
		{
			name:    "lounge list with wrong tail",
			path:    "/airports/lhr/shops",
			wantErr: true,
		},
		{
			name:    "too many segments",
			path:    "/lounges/abc/book/now",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseRoute(tt.path)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownRoute)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRoutePathRoundTrip(t *testing.T) {
	routes := []model.Route{
		{Kind: model.RouteHome},
		{Kind: model.RouteOnboarding},
		{Kind: model.RouteAirportSelect},
		{Kind: model.RouteLoungeList, AirportID: "jfk"},
		{Kind: model.RouteLoungeDetail, LoungeID: "abc"},
		{Kind: model.RouteBookingOverlay, LoungeID: "abc"},
		{Kind: model.RouteCheckoutOverlay},
		{Kind: model.RouteConfirmation, Reference: "LNG-A1B2C3D4"},
	}

	for _, route := range routes {
		t.Run(string(route.Kind), func(t *testing.T) {
			parsed, err := model.ParseRoute(route.Path())

			assert.NoError(t, err)
			assert.Equal(t, route, parsed)
		})
	}
}

func TestRouteOverlay(t *testing.T) {
	assert.Equal(t, model.OverlayBooking, model.Route{Kind: model.RouteBookingOverlay}.Overlay())
	assert.Equal(t, model.OverlayCheckout, model.Route{Kind: model.RouteCheckoutOverlay}.Overlay())
	assert.Equal(t, model.OverlayNone, model.Route{Kind: model.RouteLoungeDetail}.Overlay())
	assert.True(t, model.Route{Kind: model.RouteCheckoutOverlay}.IsOverlay())
	assert.False(t, model.Route{Kind: model.RouteHome}.IsOverlay())
}
