package models

// Appointment keeps Date and Time as two scalar fields, exactly as the
// dashboard stores them. Ordering across days requires parsing both.
type Appointment struct {
	AppointmentID string `json:"AppointmentId"`
	PatientID     string `json:"PatientId" binding:"required"`
	DoctorID      string `json:"DoctorId" binding:"required"`
	PatientName   string `json:"PatientName"`
	DoctorName    string `json:"DoctorName"`
	Date          string `json:"Date" binding:"required"`
	Time          string `json:"Time" binding:"required"`
	Type          string `json:"Type"`
	Status        string `json:"Status"`
	Notes         string `json:"Notes"`
}

const (
	StatusProgramada = "programada"
	StatusEnProceso  = "en_proceso"
	StatusCompletada = "completada"
	StatusCancelada  = "cancelada"
)

var AppointmentTypes = []string{
	"Consulta",
	"Limpieza",
	"Extracción",
	"Ortodoncia",
	"Endodoncia",
	"Blanqueamiento",
	"Revisión",
}

// statusGraph holds the transitions the edit form offers. Once an
// appointment is completed or cancelled it is terminal.
var statusGraph = map[string][]string{
	StatusProgramada: {StatusEnProceso, StatusCancelada},
	StatusEnProceso:  {StatusCompletada, StatusCancelada},
}

// ValidStatusTransition reports whether an appointment may move from one
// status to another. Setting the same status again is always allowed.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}
