package booking

import (
	"context"
	"fmt"

	"github.com/lumiere-salon/salon-scheduler/internal/audit"
	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
)

type RegisterPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterPayment {
	return &RegisterPayment{
		repo:  repo,
		audit: audit,
	}
}

// Atualização simples de campos, sem regra de conflito.
func (uc *RegisterPayment) Execute(
	ctx context.Context,
	userID uint,
	ip string,
	appointmentID uint,
	method string,
	amount float64,
) (int64, error) {

	changes, err := uc.repo.UpdatePayment(ctx, appointmentID, method, amount)
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:  &userID,
		Action:  "PAYMENT_REGISTER",
		Details: fmt.Sprintf("Registrou pagamento no valor de R$ %.2f para agendamento %d", amount, appointmentID),
		IP:      ip,
	})

	return changes, nil
}
