package converter

import (
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// The time is rendered as an HH:MM label; the date as YYYY-MM-DD.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		DoctorID:         appointment.DoctorID,
		Date:             appointment.AppointmentDate.Format("2006-01-02"),
		Time:             timeLabel(appointment.AppointmentTime),
		PatientName:      appointment.PatientName,
		PatientPhone:     appointment.PatientPhone,
		Status:           string(appointment.Status),
		VerificationCode: appointment.VerificationCode,
		Metadata:         appointment.Metadata,
		CreatedAt:        appointment.CreatedAt,
	}
}

// AppointmentsToListResponse converts a slice of Appointment entities to AppointmentListResponse DTO
func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
