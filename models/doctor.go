package models

// ScheduleDay is one weekday slot of a doctor's weekly schedule.
type ScheduleDay struct {
	Enabled bool   `json:"Enabled"`
	Start   string `json:"Start"`
	End     string `json:"End"`
}

type Doctor struct {
	DoctorID        string                 `json:"DoctorId"`
	Name            string                 `json:"Name" binding:"required"`
	Email           string                 `json:"Email"`
	Phone           string                 `json:"Phone"`
	Specialty       string                 `json:"Specialty" binding:"required"`
	LicenseNumber   string                 `json:"LicenseNumber"`
	YearsExperience int                    `json:"YearsExperience"`
	Status          string                 `json:"Status"`
	Description     string                 `json:"Description"`
	Education       string                 `json:"Education"`
	Certifications  string                 `json:"Certifications"`
	Schedule        map[string]ScheduleDay `json:"Schedule"`
	ConsultationFee float64                `json:"ConsultationFee"`
	Address         string                 `json:"Address"`
	Languages       []string               `json:"Languages"`
}

const (
	DoctorOnline    = "online"
	DoctorAvailable = "available"
	DoctorBusy      = "busy"
	DoctorOffline   = "offline"
)

// Specialties the clinic offers. The dashboard's doctor form only accepts
// values from this list.
var Specialties = []string{
	"Odontología General",
	"Ortodoncia",
	"Endodoncia",
	"Periodoncia",
	"Cirugía Oral",
	"Odontopediatría",
	"Implantología",
	"Estética Dental",
}
