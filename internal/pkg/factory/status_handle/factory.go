package status_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/internal/service/loadevent"
)

type StatusHandlerFactory struct {
	dispatchService loadevent.DispatchService
}

func NewStatusHandlerFactory(dispatchService loadevent.DispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.LoadStatusType) (loadevent.ExecuteFn, error) {
	switch status {
	case entities.LoadInTransit:
		return f.inTransitHandler, nil
	case entities.LoadDelivered:
		return f.deliveredHandler, nil
	case entities.LoadCancelled:
		return f.cancelledHandler, nil
	case entities.LoadProblem:
		return f.problemHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", loadevent.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) inTransitHandler(ctx context.Context, loadID int64) error {
	_, err := f.dispatchService.ChangeStatus(ctx, loadID, entities.LoadInTransit)
	if err != nil {
		return fmt.Errorf("mark load %d in transit: %w", loadID, err)
	}
	metrics.LoadStatusAppliedTotal.WithLabelValues(entities.LoadInTransit.String()).Inc()
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, loadID int64) error {
	_, err := f.dispatchService.ChangeStatus(ctx, loadID, entities.LoadDelivered)
	if err != nil {
		return fmt.Errorf("deliver load %d: %w", loadID, err)
	}
	metrics.LoadStatusAppliedTotal.WithLabelValues(entities.LoadDelivered.String()).Inc()
	return nil
}

// cancelledHandler снимает водителя до смены статуса: отменённый груз
// не должен держать водителя занятым, в отличие от доставленного,
// которого освобождает сам workflow.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, loadID int64) error {
	if _, err := f.dispatchService.UnassignDriver(ctx, loadID); err != nil {
		return fmt.Errorf("unassign driver for cancelled load %d: %w", loadID, err)
	}
	if _, err := f.dispatchService.ChangeStatus(ctx, loadID, entities.LoadCancelled); err != nil {
		return fmt.Errorf("cancel load %d: %w", loadID, err)
	}
	metrics.LoadStatusAppliedTotal.WithLabelValues(entities.LoadCancelled.String()).Inc()
	return nil
}

func (f *StatusHandlerFactory) problemHandler(ctx context.Context, loadID int64) error {
	_, err := f.dispatchService.ChangeStatus(ctx, loadID, entities.LoadProblem)
	if err != nil {
		return fmt.Errorf("flag problem on load %d: %w", loadID, err)
	}
	metrics.LoadStatusAppliedTotal.WithLabelValues(entities.LoadProblem.String()).Inc()
	return nil
}
