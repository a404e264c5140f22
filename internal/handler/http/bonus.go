package http

import (
	"encoding/json"
	"net/http"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/handler/http/response"
)

type BonusHandler interface {
	Edit(w http.ResponseWriter, r *http.Request)
	EditReason(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

func (h *bonusHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req bonus.EditBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bonusService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) EditReason(w http.ResponseWriter, r *http.Request) {
	var req bonus.EditBonusReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bonusService.EditReason(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
