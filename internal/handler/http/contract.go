package http

import (
	"encoding/json"
	"net/http"

	"github.com/turniapp/turni-backend-go/internal/domain/contract"
	"github.com/turniapp/turni-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService contract.Service
}

func NewContractHandler(contractService contract.Service) ContractHandler {
	return &contractHandlerImpl{
		contractService: contractService,
	}
}

func (h *contractHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.contractService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *contractHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.contractService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}
