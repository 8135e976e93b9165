package models

type Patient struct {
	PatientID        string `json:"PatientId"`
	Name             string `json:"Name" binding:"required"`
	Email            string `json:"Email"`
	Phone            string `json:"Phone"`
	BirthDate        string `json:"BirthDate" binding:"required"`
	Gender           string `json:"Gender"`
	Address          string `json:"Address"`
	EmergencyContact string `json:"EmergencyContact"`
	EmergencyPhone   string `json:"EmergencyPhone"`
	Insurance        string `json:"Insurance"`
	MedicalNotes     string `json:"MedicalNotes"`
	Allergies        string `json:"Allergies"`
	Medications      string `json:"Medications"`
}

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)
