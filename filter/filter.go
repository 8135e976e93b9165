// Package filter is the dashboard's search engine: linear scans over the
// in-memory collections, fine for the few hundred records a single clinic
// produces.
package filter

import (
	"strings"
	"time"

	"dentadmin_back_end_go/models"
)

// All is the sentinel that disables a categorical filter. An empty value is
// treated the same way so unset query params fall through.
const All = "all"

const (
	BracketChild  = "child"
	BracketAdult  = "adult"
	BracketSenior = "senior"
)

type PatientFilter struct {
	Search     string
	Gender     string
	AgeBracket string
}

type DoctorFilter struct {
	Search    string
	Specialty string
	Status    string
}

type AppointmentFilter struct {
	Search   string
	Status   string
	DoctorID string
}

func active(value string) bool {
	return value != "" && value != All
}

// matches reports whether any of the fields contains term, case-insensitive.
// An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// AgeAt computes a calendar-aware age: the year difference drops by one when
// the birthday has not yet passed.
func AgeAt(birthDate string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// AgeBracket buckets an age: child under 18, senior from 65, adult between.
func AgeBracket(age int) string {
	switch {
	case age < 18:
		return BracketChild
	case age < 65:
		return BracketAdult
	default:
		return BracketSenior
	}
}

// Patients returns the subset matching the filter. The search term is tested
// against name, email and phone; gender and age bracket are exact matches.
func Patients(list []models.Patient, f PatientFilter, now time.Time) []models.Patient {
	var out []models.Patient
	for _, p := range list {
		if !matches(f.Search, p.Name, p.Email, p.Phone) {
			continue
		}
		if active(f.Gender) && p.Gender != f.Gender {
			continue
		}
		if active(f.AgeBracket) && AgeBracket(AgeAt(p.BirthDate, now)) != f.AgeBracket {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Doctors returns the subset matching the filter. The search term is tested
// against name, email and phone.
func Doctors(list []models.Doctor, f DoctorFilter) []models.Doctor {
	var out []models.Doctor
	for _, d := range list {
		if !matches(f.Search, d.Name, d.Email, d.Phone) {
			continue
		}
		if active(f.Specialty) && d.Specialty != f.Specialty {
			continue
		}
		if active(f.Status) && d.Status != f.Status {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Appointments returns the subset matching the filter. The search term is
// tested against the denormalized patient name, doctor name and type.
func Appointments(list []models.Appointment, f AppointmentFilter) []models.Appointment {
	var out []models.Appointment
	for _, a := range list {
		if !matches(f.Search, a.PatientName, a.DoctorName, a.Type) {
			continue
		}
		if active(f.Status) && a.Status != f.Status {
			continue
		}
		if active(f.DoctorID) && a.DoctorID != f.DoctorID {
			continue
		}
		out = append(out, a)
	}
	return out
}
