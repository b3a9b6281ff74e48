package createtransaction

import (
	"encoding/json"
	"io"
	"net/http"

	e "billmind/internal/core/domain/errors"
	"billmind/internal/core/domain/user"
	"billmind/internal/core/services"
	service "billmind/internal/core/services/create_transaction"
	"billmind/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/golang-module/carbon/v2"
)

const dateLayout = "2006-01-02"

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
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

type Result struct {
	Transaction response.Transaction `json:"transaction"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Length(0, 64)),
		validation.Field(&i.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&i.Category, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Date, validation.Required, validation.Date(dateLayout)),
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

	date := carbon.ParseByLayout(input.Date, dateLayout, carbon.UTC)

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			UserID:   userID,
			Amount:   input.Amount,
			Category: input.Category,
			Date:     date.Carbon2Time(),
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	txn := response.Transaction{}
	txn.FromDomainType(result.Transaction)
	response.Render(rw, Result{Transaction: txn}, http.StatusCreated)
}
