package converter

import (
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:               patient.ID,
		PhoneNumber:      patient.PhoneNumber,
		FirstName:        patient.FirstName,
		LastName:         patient.LastName,
		Email:            patient.Email,
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		IsGuest:          patient.IsGuest,
		CreatedAt:        patient.CreatedAt,
	}

	if patient.BirthDate != nil {
		response.BirthDate = patient.BirthDate.Format("2006-01-02")
	}

	return response
}
