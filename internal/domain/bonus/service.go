package bonus

import "context"

type BonusService interface {
	// Edit resolves and persists an amount edit for the employee's bonus.
	Edit(ctx context.Context, req EditBonusRequest) (EditBonusResponse, error)
	// EditReason updates the free-text reason only; the amount branching is
	// never involved.
	EditReason(ctx context.Context, req EditBonusReasonRequest) (EditBonusResponse, error)
}
