package shift

import "context"

type ShiftService interface {
	// Edit resolves and persists a shift edit, returning the applied operation.
	Edit(ctx context.Context, req EditShiftRequest) (EditShiftResponse, error)
}
