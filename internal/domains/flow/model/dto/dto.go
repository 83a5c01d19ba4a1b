package dto

import (
	"loungepass/internal/domains/flow/model"
)

type ResolveRequest struct {
	Path string `json:"path" validate:"required,max=512"`
}

type NavigationResponse struct {
	Background     string `json:"background"`
	BackgroundKind string `json:"background_kind"`
	Overlay        string `json:"overlay"`
	LoungeID       string `json:"lounge_id,omitempty"`
	Reference      string `json:"reference,omitempty"`
}

func (r *NavigationResponse) FromRoutes(background model.Route, overlay model.OverlayKind, requested model.Route) {
	r.Background = background.Path()
	r.BackgroundKind = string(background.Kind)
	r.Overlay = string(overlay)

	if requested.Kind == model.RouteBookingOverlay {
		r.LoungeID = requested.LoungeID
	}

	if requested.Kind == model.RouteConfirmation {
		r.Reference = requested.Reference
	}
}
