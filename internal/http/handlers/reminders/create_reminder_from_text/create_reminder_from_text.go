package createreminderfromtext

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "billmind/internal/core/domain/errors"
	ratelimiter "billmind/internal/core/domain/rate_limiter"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	service "billmind/internal/core/services/create_reminder_from_text"
	"billmind/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Message, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.UserID, validation.Length(0, 64)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	userID, err := h.identity.ResolveUserID(r.Context(), input.UserID)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{UserID: userID, Message: input.Message},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, reminder.ErrEmptyMessage):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			// Extraction, normalization and storage failures are all
			// surfaced as a generic error; the failure kind is preserved
			// in the service logs.
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
