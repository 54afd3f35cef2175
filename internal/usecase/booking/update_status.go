package booking

import (
	"context"
	"fmt"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID uint,
	ip string,
	appointmentID uint,
	status string,
) (int64, error) {

	if !domain.IsValidStatus(status) {
		return 0, httperr.ErrBusiness("invalid_status")
	}

	changes, err := uc.repo.UpdateStatus(ctx, appointmentID, status)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:  &userID,
		Action:  "APPOINTMENT_STATUS_UPDATE",
		Details: fmt.Sprintf("Alterou status do agendamento %d para %s", appointmentID, status),
		IP:      ip,
	})

	return changes, nil
}
