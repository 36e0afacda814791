package converter

import (
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
	"hospital-booking-service/pkg/timeslot"

	"github.com/google/uuid"
)

// ScheduleToResponse converts a DoctorSchedule entity to ScheduleResponse DTO.
// Times are rendered as HH:MM labels regardless of how they are stored.
func ScheduleToResponse(schedule *entity.DoctorSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:                  schedule.ID,
		DoctorID:            schedule.DoctorID,
		DayOfWeek:           schedule.DayOfWeek,
		StartTime:           timeLabel(schedule.StartTime),
		EndTime:             timeLabel(schedule.EndTime),
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		IsActive:            schedule.IsActive,
		CreatedAt:           schedule.CreatedAt,
		UpdatedAt:           schedule.UpdatedAt,
	}

	if schedule.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&schedule.Doctor)
	}

	return response
}

// timeLabel renders a stored time as HH:MM, falling back to the raw
// value if it does not parse.
func timeLabel(s string) string {
	label, err := timeslot.Label(s)
	if err != nil {
		return s
	}
	return label
}

// SchedulesToListResponse converts a slice of DoctorSchedule entities to ScheduleListResponse DTO
func SchedulesToListResponse(schedules []entity.DoctorSchedule) *dto.ScheduleListResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return &dto.ScheduleListResponse{
		Schedules: responses,
		Total:     len(responses),
	}
}
