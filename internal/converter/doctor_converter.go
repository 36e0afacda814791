package converter

import (
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		FullName:       doctor.FullName,
		Specialization: doctor.Specialization,
		Bio:            doctor.Bio,
		ImageURL:       doctor.ImageURL,
		InstagramURL:   doctor.InstagramURL,
		FacebookURL:    doctor.FacebookURL,
		PhoneNumber:    doctor.PhoneNumber,
		IsActive:       doctor.IsActive,
		CreatedAt:      doctor.CreatedAt,
		UpdatedAt:      doctor.UpdatedAt,
	}
}

// DoctorsToListResponse converts a slice of Doctor entities to DoctorListResponse DTO
func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}
