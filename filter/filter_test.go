package filter

import (
	"testing"
	"time"

	"dentadmin_back_end_go/models"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func somePatients() []models.Patient {
	return []models.Patient{
		{PatientID: "p1", Name: "Juan Pérez", Email: "juan.perez@mail.com", Phone: "555-0101", BirthDate: "1980-03-15", Gender: models.GenderMale},
		{PatientID: "p2", Name: "Ana López", Email: "ana@mail.com", Phone: "555-0102", BirthDate: "2015-06-20", Gender: models.GenderFemale},
		{PatientID: "p3", Name: "Carmen Ruiz", Email: "carmen@mail.com", Phone: "555-0103", BirthDate: "1955-01-10", Gender: models.GenderFemale},
	}
}

func TestPatientsIdentityWhenNoFilterActive(t *testing.T) {
	list := somePatients()
	out := Patients(list, PatientFilter{Search: "", Gender: All, AgeBracket: All}, now)
	assert.Equal(t, list, out)
}

func TestPatientsFilterIsIdempotent(t *testing.T) {
	f := PatientFilter{Search: "mail.com", Gender: models.GenderFemale, AgeBracket: All}
	once := Patients(somePatients(), f, now)
	twice := Patients(once, f, now)
	assert.Equal(t, once, twice)
	// every match appears exactly once
	seen := map[string]int{}
	for _, p := range once {
		seen[p.PatientID]++
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "patient %s duplicated", id)
	}
}

func TestPatientsSearchIsCaseInsensitive(t *testing.T) {
	out := Patients(somePatients(), PatientFilter{Search: "jUaN"}, now)
	assert.Len(t, out, 1)
	assert.Equal(t, "Juan Pérez", out[0].Name)

	out = Patients(somePatients(), PatientFilter{Search: "555-0102"}, now)
	assert.Len(t, out, 1)
	assert.Equal(t, "Ana López", out[0].Name)
}

func TestAgeBracketBoundaries(t *testing.T) {
	// exactly 18 today: adult, not child
	assert.Equal(t, BracketAdult, AgeBracket(AgeAt("2008-08-30", now)))
	// turns 18 tomorrow: still child
	assert.Equal(t, BracketChild, AgeBracket(AgeAt("2008-08-31", now)))
	// exactly 65 today: senior, not adult
	assert.Equal(t, BracketSenior, AgeBracket(AgeAt("1961-08-30", now)))
	// turns 65 tomorrow: still adult
	assert.Equal(t, BracketAdult, AgeBracket(AgeAt("1961-08-31", now)))
}

func TestAgeAtAdjustsForUnpassedBirthday(t *testing.T) {
	assert.Equal(t, 45, AgeAt("1980-12-25", now))
	assert.Equal(t, 46, AgeAt("1980-03-15", now))
	assert.Equal(t, 0, AgeAt("not-a-date", now))
}

func TestPatientsAgeBracketFilter(t *testing.T) {
	out := Patients(somePatients(), PatientFilter{AgeBracket: BracketChild}, now)
	assert.Len(t, out, 1)
	assert.Equal(t, "Ana López", out[0].Name)

	out = Patients(somePatients(), PatientFilter{AgeBracket: BracketSenior}, now)
	assert.Len(t, out, 1)
	assert.Equal(t, "Carmen Ruiz", out[0].Name)
}

func TestPatientsPredicatesCompose(t *testing.T) {
	// text match alone hits p2 and p3, gender narrows further
	out := Patients(somePatients(), PatientFilter{Search: "ruiz", Gender: models.GenderFemale}, now)
	assert.Len(t, out, 1)
	out = Patients(somePatients(), PatientFilter{Search: "ruiz", Gender: models.GenderMale}, now)
	assert.Empty(t, out)
}

func TestDoctorsFilter(t *testing.T) {
	doctors := []models.Doctor{
		{DoctorID: "d1", Name: "Dra. Gómez", Email: "gomez@clinic.com", Specialty: "Ortodoncia", Status: models.DoctorAvailable},
		{DoctorID: "d2", Name: "Dr. Silva", Email: "silva@clinic.com", Specialty: "Endodoncia", Status: models.DoctorOffline},
	}
	out := Doctors(doctors, DoctorFilter{Specialty: "Ortodoncia"})
	assert.Len(t, out, 1)
	assert.Equal(t, "d1", out[0].DoctorID)

	out = Doctors(doctors, DoctorFilter{Search: "CLINIC.COM", Status: All})
	assert.Len(t, out, 2)

	out = Doctors(doctors, DoctorFilter{Status: models.DoctorOffline})
	assert.Len(t, out, 1)
	assert.Equal(t, "d2", out[0].DoctorID)
}

func TestAppointmentsFilter(t *testing.T) {
	appointments := []models.Appointment{
		{AppointmentID: "a1", PatientName: "Juan Pérez", DoctorName: "Dra. Gómez", Type: "Limpieza", Status: models.StatusProgramada, DoctorID: "d1"},
		{AppointmentID: "a2", PatientName: "Ana López", DoctorName: "Dr. Silva", Type: "Extracción", Status: models.StatusCompletada, DoctorID: "d2"},
	}
	out := Appointments(appointments, AppointmentFilter{Search: "limpieza"})
	assert.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].AppointmentID)

	out = Appointments(appointments, AppointmentFilter{Status: models.StatusCompletada, DoctorID: "d2"})
	assert.Len(t, out, 1)
	assert.Equal(t, "a2", out[0].AppointmentID)

	out = Appointments(appointments, AppointmentFilter{Status: models.StatusCompletada, DoctorID: "d1"})
	assert.Empty(t, out)
}
