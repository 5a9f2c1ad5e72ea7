package inventory

import (
	"context"
	"fmt"

	"github.com/rdmartins/drilltrack-backend/pkg/enums"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

// Service exposes the inventory operations the API surface needs.
type Service interface {
	ApplyWithdrawal(ctx context.Context, input WithdrawalRequest) (Withdrawal, error)
	Items(ctx context.Context, modelFilter string) ([]ToolItem, error)
	Withdrawals(ctx context.Context, limit int) []Withdrawal
	Snapshot(ctx context.Context) State
}

// WithdrawalRequest carries raw, not yet validated, withdrawal fields.
type WithdrawalRequest struct {
	ToolID     string
	Quantity   int
	Reason     string
	Supervisor string
}

type service struct {
	store *Store
	logg  *logger.Logger
}

// NewService constructs the inventory service.
func NewService(store *Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("inventory store required")
	}
	return &service{store: store, logg: logg}, nil
}

func (s *service) ApplyWithdrawal(ctx context.Context, input WithdrawalRequest) (Withdrawal, error) {
	if input.Quantity <= 0 {
		return Withdrawal{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer").
			WithDetails(map[string]any{"quantity": input.Quantity})
	}

	reason, err := enums.ParseWithdrawalReason(input.Reason)
	if err != nil {
		return Withdrawal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown withdrawal reason")
	}

	supervisor, err := enums.ParseSupervisor(input.Supervisor)
	if err != nil {
		return Withdrawal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown supervisor")
	}

	record, err := s.store.ApplyWithdrawal(ApplyWithdrawalInput{
		ToolID:     input.ToolID,
		Quantity:   input.Quantity,
		Reason:     reason,
		Supervisor: supervisor,
	})
	if err != nil {
		return Withdrawal{}, err
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"withdrawal_id": record.ID,
			"tool_id":       record.ToolID,
			"quantity":      record.Quantity,
		})
		s.logg.Info(ctx, "withdrawal.applied")
	}

	return record, nil
}

func (s *service) Items(ctx context.Context, modelFilter string) ([]ToolItem, error) {
	state := s.store.Snapshot()
	if modelFilter == "" {
		return state.Inventory, nil
	}

	model, err := enums.ParseToolModel(modelFilter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown tool model")
	}

	filtered := make([]ToolItem, 0, len(state.Inventory))
	for _, item := range state.Inventory {
		if item.Model == model {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *service) Withdrawals(ctx context.Context, limit int) []Withdrawal {
	state := s.store.Snapshot()
	if limit <= 0 || limit >= len(state.Withdrawals) {
		return state.Withdrawals
	}
	return state.Withdrawals[:limit]
}

func (s *service) Snapshot(ctx context.Context) State {
	return s.store.Snapshot()
}
