package store

import (
	"context"

	"dentadmin_back_end_go/models"
)

// Store is the contract the data provider talks to. The production
// implementation is PgStore; tests substitute a mock.
type Store interface {
	ListPatients(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	UpdatePatient(ctx context.Context, patientId string, patient models.Patient) error
	DeletePatient(ctx context.Context, patientId string) error

	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorId string, doctor models.Doctor) error
	DeleteDoctor(ctx context.Context, doctorId string) error

	// ListAppointments joins patient and doctor display names onto each
	// record server-side.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentId string, appointment models.Appointment) error
	DeleteAppointment(ctx context.Context, appointmentId string) error

	Stats(ctx context.Context) (models.Stats, error)
}
