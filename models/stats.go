package models

// Stats is the count-only projection the dashboard header renders. It is
// computed by the store, never derived from the in-memory collections.
type Stats struct {
	TotalPatients     int `json:"TotalPatients"`
	TotalAppointments int `json:"TotalAppointments"`
	TodayAppointments int `json:"TodayAppointments"`
}
