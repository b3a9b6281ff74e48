package listuserreminders

import (
	"net/http"

	c "billmind/internal/core/domain/common"
	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	service "billmind/internal/core/services/list_user_reminders"
	"billmind/internal/http/handlers/response"
)

type Handler struct {
	service  services.Service[service.Input, service.Result]
	identity user.IdentityResolver
}

func New(
	service services.Service[service.Input, service.Result],
	identity user.IdentityResolver,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	return &Handler{service: service, identity: identity}
}

type Result struct {
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(rw, r)
	if !ok {
		return
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Reminders: response.Reminders(result.Reminders)}, http.StatusOK)
}

func (h *Handler) decodeInput(rw http.ResponseWriter, r *http.Request) (input service.Input, ok bool) {
	rawUserID := r.URL.Query().Get("user_id")
	if rawUserID == "" {
		return input, true
	}
	userID, err := h.identity.ResolveUserID(r.Context(), rawUserID)
	if err != nil {
		response.RenderInternalError(rw)
		return input, false
	}
	input.UserIDEquals = c.NewOptional(userID, true)
	return input, true
}
