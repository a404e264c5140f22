package bonus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
)

type BonusServiceImpl struct {
	bonusRepo    bonus.BonusRepository
	employeeRepo employee.EmployeeRepository

	// Serializes edits per employee, same single-writer-per-key discipline
	// as the shift service.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewBonusService(bonusRepo bonus.BonusRepository, employeeRepo employee.EmployeeRepository) bonus.BonusService {
	return &BonusServiceImpl{
		bonusRepo:    bonusRepo,
		employeeRepo: employeeRepo,
		locks:        make(map[int64]*sync.Mutex),
	}
}

func (s *BonusServiceImpl) lockFor(employeeID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[employeeID] = l
	}
	return l
}

func (s *BonusServiceImpl) Edit(ctx context.Context, req bonus.EditBonusRequest) (bonus.EditBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.EditBonusResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return bonus.EditBonusResponse{}, err
	}

	lock := s.lockFor(req.EmployeeID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.bonusRepo.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.PeriodYear, time.Month(req.PeriodMonth))
	if err != nil {
		return bonus.EditBonusResponse{}, fmt.Errorf("failed to load bonus: %w", err)
	}

	op, next, err := bonus.ResolveEdit(existing, req.EmployeeID, req.Amount, req.Reason, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return bonus.EditBonusResponse{}, err
	}

	return s.apply(ctx, op, next)
}

func (s *BonusServiceImpl) EditReason(ctx context.Context, req bonus.EditBonusReasonRequest) (bonus.EditBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.EditBonusResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return bonus.EditBonusResponse{}, err
	}

	lock := s.lockFor(req.EmployeeID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.bonusRepo.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.PeriodYear, time.Month(req.PeriodMonth))
	if err != nil {
		return bonus.EditBonusResponse{}, fmt.Errorf("failed to load bonus: %w", err)
	}

	op, next, err := bonus.ResolveReasonEdit(existing, req.Reason)
	if err != nil {
		return bonus.EditBonusResponse{}, err
	}

	return s.apply(ctx, op, next)
}

func (s *BonusServiceImpl) apply(ctx context.Context, op bonus.Operation, next *bonus.Bonus) (bonus.EditBonusResponse, error) {
	switch op.Kind {
	case bonus.OpNone:
		return bonus.EditBonusResponse{Operation: bonus.OpNone}, nil

	case bonus.OpInsert:
		created, err := s.bonusRepo.Insert(ctx, op.Bonus)
		if err != nil {
			return bonus.EditBonusResponse{}, fmt.Errorf("failed to insert bonus: %w", err)
		}
		resp := bonus.ToResponse(created)
		return bonus.EditBonusResponse{Operation: bonus.OpInsert, Bonus: &resp}, nil

	case bonus.OpUpdate:
		if err := s.bonusRepo.Update(ctx, op.Bonus); err != nil {
			return bonus.EditBonusResponse{}, fmt.Errorf("failed to update bonus: %w", err)
		}
		resp := bonus.ToResponse(*next)
		return bonus.EditBonusResponse{Operation: bonus.OpUpdate, Bonus: &resp}, nil

	default:
		if err := s.bonusRepo.Delete(ctx, op.Bonus.ID); err != nil {
			return bonus.EditBonusResponse{}, fmt.Errorf("failed to delete bonus: %w", err)
		}
		return bonus.EditBonusResponse{Operation: bonus.OpDelete}, nil
	}
}
