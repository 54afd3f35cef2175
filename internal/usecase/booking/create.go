package booking

import (
	"context"

	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
	"github.com/lumiere-salon/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Name    string
	Phone   string
	Service string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	PaymentMethod string
	Amount        float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.Name == "" || in.Phone == "" || in.Service == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	// --------------------------------------------------
	// 2️⃣ Telefone brasileiro válido, guardado só com dígitos
	// --------------------------------------------------
	if !validators.IsValidPhone(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	phone := validators.NormalizePhone(in.Phone)

	// --------------------------------------------------
	// 3️⃣ Conflito de horário (fast path)
	// --------------------------------------------------
	if err := uc.repo.AssertSlotFree(ctx, in.Date, in.Time); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Cliente (get or create pelo telefone)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, in.Name, phone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Criação do agendamento — a constraint única em
	//     (date, time) fecha a janela da pré-checagem
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:      client.ID,
		Service:       in.Service,
		Date:          in.Date,
		Time:          in.Time,
		Status:        string(domain.InitialStatus()),
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Amount,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
