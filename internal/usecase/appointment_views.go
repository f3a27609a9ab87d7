package usecase

import (
	"sort"
	"strings"
	"time"

	"medcare-booking/internal/domain/entity"
)

// The views below are pure: they never modify their input and always return
// a fresh, non-nil slice. "today" is a YYYY-MM-DD string; dates compare
// lexicographically, which matches calendar order for that format.

// DateString renders t as the UTC calendar date used by appointments
func DateString(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// TodayAppointments returns appointments dated today, in stored order
func TodayAppointments(appointments []entity.Appointment, today string) []entity.Appointment {
	return filterAppointments(appointments, func(a *entity.Appointment) bool {
		return a.Date == today
	})
}

// UpcomingAppointments returns appointments dated today or later that are not cancelled
func UpcomingAppointments(appointments []entity.Appointment, today string) []entity.Appointment {
	return filterAppointments(appointments, func(a *entity.Appointment) bool {
		return a.Date >= today && !a.IsCancelled()
	})
}

// AppointmentsWithStatus returns appointments in the given status
func AppointmentsWithStatus(appointments []entity.Appointment, status entity.AppointmentStatus) []entity.Appointment {
	return filterAppointments(appointments, func(a *entity.Appointment) bool {
		return a.Status == status
	})
}

// GroupByStatus buckets appointments by status. Every known status is present.
func GroupByStatus(appointments []entity.Appointment) map[entity.AppointmentStatus][]entity.Appointment {
	groups := make(map[entity.AppointmentStatus][]entity.Appointment, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		groups[status] = make([]entity.Appointment, 0)
	}
	for _, a := range appointments {
		groups[a.Status] = append(groups[a.Status], a)
	}
	return groups
}

// CountByStatus counts appointments per status. Every known status is present.
func CountByStatus(appointments []entity.Appointment) map[entity.AppointmentStatus]int {
	counts := make(map[entity.AppointmentStatus]int, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		counts[status] = 0
	}
	for _, a := range appointments {
		counts[a.Status]++
	}
	return counts
}

// SortBySchedule orders by date then time, ascending unless desc is set.
// Ties keep their stored order.
func SortBySchedule(appointments []entity.Appointment, desc bool) []entity.Appointment {
	sorted := append(make([]entity.Appointment, 0, len(appointments)), appointments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[i].ScheduledAt() > sorted[j].ScheduledAt()
		}
		return sorted[i].ScheduledAt() < sorted[j].ScheduledAt()
	})
	return sorted
}

// SortByRecent orders by creation time, newest first
func SortByRecent(appointments []entity.Appointment) []entity.Appointment {
	sorted := append(make([]entity.Appointment, 0, len(appointments)), appointments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// FilterAppointments applies a listing filter. patientName resolves a patient
// id for search and may be nil.
func FilterAppointments(appointments []entity.Appointment, filter entity.AppointmentFilter, today string, patientName func(string) string) []entity.Appointment {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	result := filterAppointments(appointments, func(a *entity.Appointment) bool {
		if filter.Status != "" && a.Status != filter.Status {
			return false
		}

		switch filter.DateScope {
		case entity.DateScopeToday:
			if a.Date != today {
				return false
			}
		case entity.DateScopeUpcoming:
			if a.Date < today {
				return false
			}
		case entity.DateScopePast:
			if a.Date >= today {
				return false
			}
		}

		if search == "" {
			return true
		}
		if strings.Contains(strings.ToLower(a.Reason), search) {
			return true
		}
		return patientName != nil && strings.Contains(strings.ToLower(patientName(a.PatientID)), search)
	})

	switch filter.SortBy {
	case entity.AppointmentSortSchedule:
		return SortBySchedule(result, false)
	case entity.AppointmentSortScheduleDesc:
		return SortBySchedule(result, true)
	case entity.AppointmentSortRecent:
		return SortByRecent(result)
	}
	return result
}

// DistinctCount counts distinct values of key across appointments
func DistinctCount(appointments []entity.Appointment, key func(*entity.Appointment) string) int {
	seen := make(map[string]struct{}, len(appointments))
	for i := range appointments {
		seen[key(&appointments[i])] = struct{}{}
	}
	return len(seen)
}

func limitAppointments(appointments []entity.Appointment, n int) []entity.Appointment {
	if len(appointments) > n {
		return appointments[:n]
	}
	return appointments
}

func filterAppointments(appointments []entity.Appointment, keep func(*entity.Appointment) bool) []entity.Appointment {
	result := make([]entity.Appointment, 0, len(appointments))
	for i := range appointments {
		if keep(&appointments[i]) {
			result = append(result, appointments[i])
		}
	}
	return result
}
