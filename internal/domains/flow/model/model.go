package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EntityName = "navigation"
)

var ErrUnknownRoute = errors.New("unknown route")

type RouteKind string

const (
	RouteHome            RouteKind = "home"
	RouteOnboarding      RouteKind = "onboarding"
	RouteAirportSelect   RouteKind = "airport_select"
	RouteLoungeList      RouteKind = "lounge_list"
	RouteLoungeDetail    RouteKind = "lounge_detail"
	RouteBookingOverlay  RouteKind = "booking_overlay"
	RouteCheckoutOverlay RouteKind = "checkout_overlay"
	RouteConfirmation    RouteKind = "confirmation"
)

type OverlayKind string

const (
	OverlayNone     OverlayKind = "none"
	OverlayBooking  OverlayKind = "booking"
	OverlayCheckout OverlayKind = "checkout"
)

// Route is a parsed client location. Exactly one overlay can be open at
// a time, and overlay routes always sit on top of a background route.
type Route struct {
	Kind      RouteKind `json:"kind"`
	AirportID string    `json:"airport_id,omitempty"`
	LoungeID  string    `json:"lounge_id,omitempty"`
	Reference string    `json:"reference,omitempty"`
}

// ParseRoute maps a client path onto a typed route. Unknown paths are
// rejected rather than guessed at.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Route{Kind: RouteHome}, nil
	}

	segments := strings.Split(trimmed, "/")

	switch segments[0] {
	case "onboarding":
		if len(segments) == 1 {
			return Route{Kind: RouteOnboarding}, nil
		}
	case "airports":
		switch len(segments) {
		case 1:
			return Route{Kind: RouteAirportSelect}, nil
		case 3:
			if segments[2] == "lounges" && segments[1] != "" {
				return Route{Kind: RouteLoungeList, AirportID: segments[1]}, nil
			}
		}
	case "lounges":
		switch len(segments) {
		case 2:
			if segments[1] != "" {
				return Route{Kind: RouteLoungeDetail, LoungeID: segments[1]}, nil
			}
		case 3:
			if segments[2] == "book" && segments[1] != "" {
				return Route{Kind: RouteBookingOverlay, LoungeID: segments[1]}, nil
			}
		}
	case "checkout":
		if len(segments) == 1 {
			return Route{Kind: RouteCheckoutOverlay}, nil
		}
	case "confirmation":
		switch len(segments) {
		case 1:
			return Route{Kind: RouteConfirmation}, nil
		case 2:
			if segments[1] != "" {
				return Route{Kind: RouteConfirmation, Reference: segments[1]}, nil
			}
		}
	}

	return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
}

// Path renders the canonical client path for the route.
func (r Route) Path() string {
	switch r.Kind {
	case RouteHome:
		return "/"
	case RouteOnboarding:
		return "/onboarding"
	case RouteAirportSelect:
		return "/airports"
	case RouteLoungeList:
		return fmt.Sprintf("/airports/%s/lounges", r.AirportID)
	case RouteLoungeDetail:
		return fmt.Sprintf("/lounges/%s", r.LoungeID)
	case RouteBookingOverlay:
		return fmt.Sprintf("/lounges/%s/book", r.LoungeID)
	case RouteCheckoutOverlay:
		return "/checkout"
	case RouteConfirmation:
		if r.Reference != "" {
			return fmt.Sprintf("/confirmation/%s", r.Reference)
		}

		return "/confirmation"
	}

	return "/"
}

// Overlay reports which overlay, if any, the route opens.
func (r Route) Overlay() OverlayKind {
	switch r.Kind {
	case RouteBookingOverlay:
		return OverlayBooking
	case RouteCheckoutOverlay:
		return OverlayCheckout
	default:
		return OverlayNone
	}
}

func (r Route) IsOverlay() bool {
	return r.Overlay() != OverlayNone
}
