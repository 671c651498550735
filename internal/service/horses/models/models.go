package models

import (
	"time"

	"github.com/m04kA/FarrierBookingService/internal/domain"
)

// CreateHorseRequest запрос на добавление лошади
type CreateHorseRequest struct {
	CustomerID int64   `json:"-"`
	Name       string  `json:"name"`
	Breed      *string `json:"breed,omitempty"`
	BirthYear  *int    `json:"birthYear,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// HorseResponse ответ с данными лошади
type HorseResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Breed     *string   `json:"breed,omitempty"`
	BirthYear *int      `json:"birthYear,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HorseListResponse ответ со списком лошадей
type HorseListResponse struct {
	Horses []HorseResponse `json:"horses"`
}

func FromDomainHorse(h *domain.Horse) *HorseResponse {
	if h == nil {
		return nil
	}
	return &HorseResponse{
		ID:        h.ID,
		Name:      h.Name,
		Breed:     h.Breed,
		BirthYear: h.BirthYear,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt,
	}
}

func FromDomainHorseList(horses []*domain.Horse) *HorseListResponse {
	resp := &HorseListResponse{Horses: make([]HorseResponse, 0, len(horses))}
	for _, h := range horses {
		if r := FromDomainHorse(h); r != nil {
			resp.Horses = append(resp.Horses, *r)
		}
	}
	return resp
}
