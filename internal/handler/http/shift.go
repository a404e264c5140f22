package http

import (
	"encoding/json"
	"net/http"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/ANDREYDEN/acacio-sub000/internal/handler/http/response"
)

type ShiftHandler interface {
	Edit(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

// Edit applies one shift edit. The dashboard refetches the payroll table
// after a successful edit; rows are never patched client-side.
func (h *shiftHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	var req shift.EditShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.shiftService.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
