package dto

// Response DTOs

type PatientStats struct {
	TotalAppointments int `json:"total_appointments"`
	Upcoming          int `json:"upcoming"`
	Completed         int `json:"completed"`
	Doctors           int `json:"doctors"`
}

type PatientDashboardResponse struct {
	Stats                PatientStats          `json:"stats"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
	RecentAppointments   []AppointmentResponse `json:"recent_appointments"`
}

type DoctorStats struct {
	TotalAppointments int `json:"total_appointments"`
	Today             int `json:"today"`
	Pending           int `json:"pending"`
	Patients          int `json:"patients"`
}

type DoctorDashboardResponse struct {
	Stats               DoctorStats           `json:"stats"`
	TodayAppointments   []AppointmentResponse `json:"today_appointments"`
	PendingAppointments []AppointmentResponse `json:"pending_appointments"`
	RecentAppointments  []AppointmentResponse `json:"recent_appointments"`
}

// DashboardResponse carries exactly one of the two views
type DashboardResponse struct {
	Role    string                    `json:"role"`
	Patient *PatientDashboardResponse `json:"patient,omitempty"`
	Doctor  *DoctorDashboardResponse  `json:"doctor,omitempty"`
}
