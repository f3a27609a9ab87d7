package entity

// Date scopes for appointment listings
const (
	DateScopeAll      = "all"
	DateScopeToday    = "today"
	DateScopeUpcoming = "upcoming"
	DateScopePast     = "past"
)

// Appointment orderings
const (
	AppointmentSortSchedule     = "schedule"      // date+time ascending
	AppointmentSortScheduleDesc = "schedule_desc" // date+time descending
	AppointmentSortRecent       = "recent"        // createdAt descending
)

// AppointmentFilter is a domain-level filter for appointment listings.
// Used by usecases to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	DateScope string            // all | today | upcoming | past
	Status    AppointmentStatus // empty = any
	Search    string            // case-insensitive match on reason or patient name
	SortBy    string
}
