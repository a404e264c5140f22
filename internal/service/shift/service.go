package shift

import (
	"context"
	"fmt"
	"sync"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository

	// Serializes edits per employee: two edits never race on the same
	// (employee, day) key. The ledger resolution itself stays pure.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		locks:        make(map[int64]*sync.Mutex),
	}
}

func (s *ShiftServiceImpl) lockFor(employeeID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[employeeID] = l
	}
	return l
}

// Edit resolves the proposed edit against a fresh ledger snapshot for the
// month and applies the single resulting persistence operation. The caller
// refetches the payroll table afterwards; rows are never patched in place.
func (s *ShiftServiceImpl) Edit(ctx context.Context, req shift.EditShiftRequest) (shift.EditShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.EditShiftResponse{}, err
	}
	edit := req.ToEdit()

	if _, err := s.employeeRepo.GetByID(ctx, edit.EmployeeID); err != nil {
		return shift.EditShiftResponse{}, err
	}

	lock := s.lockFor(edit.EmployeeID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.shiftRepo.ListForMonth(ctx, edit.Date.Year(), edit.Date.Month())
	if err != nil {
		return shift.EditShiftResponse{}, fmt.Errorf("failed to load shift ledger: %w", err)
	}

	_, op, err := shift.ResolveEdit(ledger, edit)
	if err != nil {
		return shift.EditShiftResponse{}, err
	}

	switch op.Kind {
	case shift.OpNone:
		return shift.EditShiftResponse{Operation: shift.OpNone}, nil

	case shift.OpInsert:
		created, err := s.shiftRepo.Insert(ctx, op.Shift)
		if err != nil {
			return shift.EditShiftResponse{}, fmt.Errorf("failed to insert shift: %w", err)
		}
		resp := shift.ToResponse(created)
		return shift.EditShiftResponse{Operation: shift.OpInsert, Shift: &resp}, nil

	case shift.OpUpdate:
		if err := s.shiftRepo.Update(ctx, op.Shift); err != nil {
			return shift.EditShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
		}
		resp := shift.ToResponse(op.Shift)
		return shift.EditShiftResponse{Operation: shift.OpUpdate, Shift: &resp}, nil

	default:
		if err := s.shiftRepo.Delete(ctx, op.Shift.ID); err != nil {
			return shift.EditShiftResponse{}, fmt.Errorf("failed to delete shift: %w", err)
		}
		return shift.EditShiftResponse{Operation: shift.OpDelete}, nil
	}
}
