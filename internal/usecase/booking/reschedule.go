package booking

import (
	"context"
	"fmt"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
)

type Reschedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute reaplica a mesma precondição de unicidade da criação antes
// de mover o agendamento: nenhum par (date, time) pode ficar com dois
// atendimentos.
func (uc *Reschedule) Execute(
	ctx context.Context,
	userID uint,
	ip string,
	appointmentID uint,
	date string,
	timeSlot string,
) (int64, error) {

	if date == "" || timeSlot == "" {
		return 0, httperr.ErrBusiness("missing_fields")
	}

	if err := uc.repo.AssertSlotFreeExcluding(ctx, date, timeSlot, appointmentID); err != nil {
		return 0, err
	}

	changes, err := uc.repo.UpdateSlot(ctx, appointmentID, date, timeSlot)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:  &userID,
		Action:  "APPOINTMENT_RESCHEDULE",
		Details: fmt.Sprintf("Reagendou atendimento %d para %s às %s", appointmentID, date, timeSlot),
		IP:      ip,
	})

	return changes, nil
}
