package getspendinginsights

import (
	"net/http"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	service "billmind/internal/core/services/get_spending_insights"
	"billmind/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	Insights response.Insights `json:"insights"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, err := h.identity.ResolveUserID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{UserID: userID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	insights := response.Insights{}
	insights.FromDomainType(result.Insights)
	response.Render(rw, Result{Insights: insights}, http.StatusOK)
}
