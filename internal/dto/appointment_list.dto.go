package dto

import (
	"time"

	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name,omitempty"`
}

func ToAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		item := AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.FullName,
			ServiceName: ap.Service.Name,
		}
		if ap.Professional != nil {
			item.ProfessionalName = ap.Professional.Name
		}
		out = append(out, item)
	}
	return out
}
