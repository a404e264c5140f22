package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/ANDREYDEN/acacio-sub000/internal/domain/bonus"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/deduction"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/employee"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/payroll"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/sales"
	"github.com/ANDREYDEN/acacio-sub000/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	shiftRepo     shift.ShiftRepository
	bonusRepo     bonus.BonusRepository
	salesRepo     sales.SalesRepository
	deductionRepo deduction.DeductionRepository
	commission    *CommissionCalculator
	deductions    *DeductionAggregator
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	bonusRepo bonus.BonusRepository,
	salesRepo sales.SalesRepository,
	deductionRepo deduction.DeductionRepository,
	commission *CommissionCalculator,
	deductions *DeductionAggregator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:  employeeRepo,
		shiftRepo:     shiftRepo,
		bonusRepo:     bonusRepo,
		salesRepo:     salesRepo,
		deductionRepo: deductionRepo,
		commission:    commission,
		deductions:    deductions,
	}
}

// GetTable fetches fresh snapshots of all four sources and recomputes the
// complete payroll table. There is no incremental update path: edits go
// through the shift/bonus services and the table is recomputed from scratch.
func (s *PayrollServiceImpl) GetTable(ctx context.Context, year int, month time.Month) (payroll.TableResponse, error) {
	if month < time.January || month > time.December || year < 2000 || year > 2100 {
		return payroll.TableResponse{}, payroll.ErrInvalidPeriod
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.TableResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	shifts, err := s.shiftRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return payroll.TableResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	bonuses, err := s.bonusRepo.ListForMonth(ctx, year, month)
	if err != nil {
		return payroll.TableResponse{}, fmt.Errorf("failed to list bonuses: %w", err)
	}

	figures, err := s.salesRepo.ListRange(ctx, monthStart, monthEnd)
	if err != nil {
		return payroll.TableResponse{}, fmt.Errorf("failed to list sales figures: %w", err)
	}

	events, err := s.deductionRepo.ListRange(ctx, monthStart, monthEnd)
	if err != nil {
		return payroll.TableResponse{}, fmt.Errorf("failed to list deduction events: %w", err)
	}

	dailySales := alignSalesToMonth(figures, monthStart)

	commissionTotals, err := s.commission.Totals(employees, shifts, monthStart, dailySales)
	if err != nil {
		return payroll.TableResponse{}, err
	}

	deductionTotals, flagged := s.deductions.Totals(employees, events)

	rows, err := ComputeRows(employees, shifts, bonuses, commissionTotals, deductionTotals)
	if err != nil {
		return payroll.TableResponse{}, err
	}

	return toTableResponse(year, int(month), rows, flagged), nil
}

// alignSalesToMonth flattens the feed's dated figures into one value per day
// offset from the first of the month. Days without a figure are zero.
func alignSalesToMonth(figures []sales.Figure, monthStart time.Time) []decimal.Decimal {
	days := daysInMonth(monthStart)
	aligned := make([]decimal.Decimal, days)
	for i := range aligned {
		aligned[i] = decimal.Zero
	}

	for _, f := range figures {
		if f.Date.Year() != monthStart.Year() || f.Date.Month() != monthStart.Month() {
			continue
		}
		aligned[f.Date.Day()-1] = f.Amount
	}

	return aligned
}

func daysInMonth(monthStart time.Time) int {
	return monthStart.AddDate(0, 1, -1).Day()
}

func toTableResponse(year, month int, rows []payroll.Row, flagged []payroll.AmbiguousDeduction) payroll.TableResponse {
	rowResponses := make([]payroll.RowResponse, 0, len(rows))
	for _, r := range rows {
		rowResponses = append(rowResponses, payroll.ToRowResponse(r))
	}

	var flaggedResponses []payroll.FlaggedDeductionResponse
	for _, f := range flagged {
		flaggedResponses = append(flaggedResponses, payroll.FlaggedDeductionResponse{
			Label:       f.Event.Label,
			Amount:      f.Event.Amount(),
			EmployeeIDs: f.EmployeeIDs,
		})
	}

	return payroll.TableResponse{
		PeriodMonth:       month,
		PeriodYear:        year,
		Rows:              rowResponses,
		FlaggedDeductions: flaggedResponses,
	}
}
