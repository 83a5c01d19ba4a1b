package middleware

import (
	"context"
	"net/http"

	"loungepass/infras/otel"
	"loungepass/shared/constant"
	"loungepass/shared/failure"
	"loungepass/transport/http/response"

	"github.com/google/uuid"
)

// Session binds a request to its client session. The client owns the
// session identifier and sends it on every call; the server never mints
// one, so an anonymous browser keeps its drafts across requests without
// any account.
type Session interface {
	Require(next http.Handler) http.Handler
}

type sessionImpl struct {
	otel otel.Otel
}

func NewSessionMiddleware(otel otel.Otel) Session {
	return &sessionImpl{
		otel: otel,
	}
}

// Require rejects requests without a well-formed X-Session-ID header and
// stores the identifier on the context for services to pick up.
func (m *sessionImpl) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "session.middleware")

		header := request.Header.Get(constant.RequestHeaderSessionID)
		if header == "" {
			err := failure.MissingSessionError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		sessionID, err := uuid.Parse(header)
		if err != nil {
			err := failure.BadRequestFromString("X-Session-ID must be a valid UUID")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, sessionID.String())

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
