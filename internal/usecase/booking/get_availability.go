package booking

import (
	"context"

	domain "github.com/lumiere-salon/salon-scheduler/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários livres da data, em ordem crescente.
// Datas sem reserva (inclusive datas malformadas) devolvem o universo
// inteiro — não há validação de calendário aqui, de propósito.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(booked), nil
}
