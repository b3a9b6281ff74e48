package events

import (
	"net/http"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/user"
	"billmind/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	identity  user.IdentityResolver
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	identity user.IdentityResolver,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	return &Handler{log: log, sseServer: sseServer, identity: identity}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, err := h.identity.ResolveUserID(r.Context(), r.URL.Query().Get("stream"))
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	streamID := userID.String()

	q := r.URL.Query()
	q.Set("stream", streamID)
	r.URL.RawQuery = q.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from reminder events.",
			logging.Entry("userID", userID),
		)
		h.sseServer.RemoveStream(streamID)
	}()

	h.sseServer.CreateStream(streamID)
	h.log.Info(
		r.Context(),
		"Subscribed to reminder events.",
		logging.Entry("userID", userID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
