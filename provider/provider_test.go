package provider

import (
	"context"
	"errors"
	"testing"

	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Compile-time check to ensure MockStore implements store.Store
var _ store.Store = (*MockStore)(nil)

// MockStore is a mock implementation of store.Store.
type MockStore struct {
	ListPatientsFunc      func(ctx context.Context) ([]models.Patient, error)
	CreatePatientFunc     func(ctx context.Context, p models.Patient) (models.Patient, error)
	UpdatePatientFunc     func(ctx context.Context, id string, p models.Patient) error
	DeletePatientFunc     func(ctx context.Context, id string) error
	ListDoctorsFunc       func(ctx context.Context) ([]models.Doctor, error)
	CreateDoctorFunc      func(ctx context.Context, d models.Doctor) (models.Doctor, error)
	UpdateDoctorFunc      func(ctx context.Context, id string, d models.Doctor) error
	DeleteDoctorFunc      func(ctx context.Context, id string) error
	ListAppointmentsFunc  func(ctx context.Context) ([]models.Appointment, error)
	CreateAppointmentFunc func(ctx context.Context, a models.Appointment) (models.Appointment, error)
	UpdateAppointmentFunc func(ctx context.Context, id string, a models.Appointment) error
	DeleteAppointmentFunc func(ctx context.Context, id string) error
	StatsFunc             func(ctx context.Context) (models.Stats, error)

	UpdateAppointmentCalls int
}

func (m *MockStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if m.ListPatientsFunc != nil {
		return m.ListPatientsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) CreatePatient(ctx context.Context, p models.Patient) (models.Patient, error) {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, p)
	}
	p.PatientID = "generated-id"
	return p, nil
}

func (m *MockStore) UpdatePatient(ctx context.Context, id string, p models.Patient) error {
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, id, p)
	}
	return nil
}

func (m *MockStore) DeletePatient(ctx context.Context, id string) error {
	if m.DeletePatientFunc != nil {
		return m.DeletePatientFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) CreateDoctor(ctx context.Context, d models.Doctor) (models.Doctor, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, d)
	}
	d.DoctorID = "generated-id"
	return d, nil
}

func (m *MockStore) UpdateDoctor(ctx context.Context, id string, d models.Doctor) error {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, id, d)
	}
	return nil
}

func (m *MockStore) DeleteDoctor(ctx context.Context, id string) error {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if m.ListAppointmentsFunc != nil {
		return m.ListAppointmentsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	if m.CreateAppointmentFunc != nil {
		return m.CreateAppointmentFunc(ctx, a)
	}
	a.AppointmentID = "generated-id"
	return a, nil
}

func (m *MockStore) UpdateAppointment(ctx context.Context, id string, a models.Appointment) error {
	m.UpdateAppointmentCalls++
	if m.UpdateAppointmentFunc != nil {
		return m.UpdateAppointmentFunc(ctx, id, a)
	}
	return nil
}

func (m *MockStore) DeleteAppointment(ctx context.Context, id string) error {
	if m.DeleteAppointmentFunc != nil {
		return m.DeleteAppointmentFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) Stats(ctx context.Context) (models.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return models.Stats{}, nil
}

func newTestProvider(mock *MockStore) *Provider {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(mock, logger)
}

func TestLoadPopulatesCollections(t *testing.T) {
	mock := &MockStore{
		ListPatientsFunc: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{{PatientID: "p1", Name: "Juan Pérez"}}, nil
		},
		ListDoctorsFunc: func(ctx context.Context) ([]models.Doctor, error) {
			return []models.Doctor{{DoctorID: "d1", Name: "Dra. Gómez"}}, nil
		},
		ListAppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{{AppointmentID: "a1", PatientID: "p1", DoctorID: "d1", Status: models.StatusProgramada}}, nil
		},
		StatsFunc: func(ctx context.Context) (models.Stats, error) {
			return models.Stats{TotalPatients: 1, TotalAppointments: 1, TodayAppointments: 0}, nil
		},
	}
	p := newTestProvider(mock)

	err := p.Load(context.Background())
	assert.NoError(t, err)
	assert.False(t, p.Loading())
	assert.Len(t, p.Patients(), 1)
	assert.Len(t, p.Doctors(), 1)
	assert.Len(t, p.Appointments(), 1)
	assert.Equal(t, 1, p.Stats().TotalPatients)
}

func TestLoadFailureLeavesErrorState(t *testing.T) {
	mock := &MockStore{
		ListPatientsFunc: func(ctx context.Context) ([]models.Patient, error) {
			return nil, errors.New("backend down")
		},
	}
	p := newTestProvider(mock)

	err := p.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, p.LoadErr())
	assert.Empty(t, p.Patients())
}

func TestStaleLoadDiscardedAfterClose(t *testing.T) {
	var p *Provider
	mock := &MockStore{
		// Tear the session down while the load is in flight.
		StatsFunc: func(ctx context.Context) (models.Stats, error) {
			p.Close()
			return models.Stats{TotalPatients: 99}, nil
		},
		ListPatientsFunc: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{{PatientID: "p1"}}, nil
		},
	}
	p = newTestProvider(mock)

	err := p.Load(context.Background())
	assert.ErrorIs(t, err, ErrStale)
	assert.Empty(t, p.Patients())
	assert.Zero(t, p.Stats().TotalPatients)
}

func TestCreatePatientSplicesOnSuccess(t *testing.T) {
	p := newTestProvider(&MockStore{})

	created, err := p.CreatePatient(context.Background(), models.Patient{Name: "Ana López", BirthDate: "1990-04-02"})
	assert.NoError(t, err)
	assert.Equal(t, "generated-id", created.PatientID)
	assert.Len(t, p.Patients(), 1)
}

func TestCreatePatientFailureLeavesCollectionUnchanged(t *testing.T) {
	mock := &MockStore{
		CreatePatientFunc: func(ctx context.Context, pat models.Patient) (models.Patient, error) {
			return models.Patient{}, errors.New("insert failed")
		},
	}
	p := newTestProvider(mock)

	_, err := p.CreatePatient(context.Background(), models.Patient{Name: "Ana López"})
	assert.Error(t, err)
	assert.Empty(t, p.Patients())
}

func TestDeleteAppointmentOnlyOnBackendSuccess(t *testing.T) {
	appointments := []models.Appointment{
		{AppointmentID: "a1", Status: models.StatusProgramada},
		{AppointmentID: "a2", Status: models.StatusCompletada},
	}
	mock := &MockStore{
		ListAppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return appointments, nil
		},
	}
	p := newTestProvider(mock)
	assert.NoError(t, p.Load(context.Background()))

	// simulated backend failure: length unchanged
	mock.DeleteAppointmentFunc = func(ctx context.Context, id string) error {
		return errors.New("delete failed")
	}
	err := p.DeleteAppointment(context.Background(), "a1")
	assert.Error(t, err)
	assert.Len(t, p.Appointments(), 2)

	// backend success: record removed exactly once
	mock.DeleteAppointmentFunc = nil
	err = p.DeleteAppointment(context.Background(), "a1")
	assert.NoError(t, err)
	remaining := p.Appointments()
	assert.Len(t, remaining, 1)
	assert.Equal(t, "a2", remaining[0].AppointmentID)
}

func TestUpdateAppointmentRejectsIllegalTransition(t *testing.T) {
	mock := &MockStore{
		ListAppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{{AppointmentID: "a1", Status: models.StatusCompletada}}, nil
		},
	}
	p := newTestProvider(mock)
	assert.NoError(t, p.Load(context.Background()))

	err := p.UpdateAppointment(context.Background(), "a1", models.Appointment{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-01", Time: "10:00",
		Status: models.StatusProgramada,
	})
	assert.ErrorIs(t, err, ErrBadTransition)
	assert.Equal(t, 0, mock.UpdateAppointmentCalls)
	assert.Equal(t, models.StatusCompletada, p.Appointments()[0].Status)
}

func TestUpdateAppointmentAllowsLegalTransition(t *testing.T) {
	mock := &MockStore{
		ListAppointmentsFunc: func(ctx context.Context) ([]models.Appointment, error) {
			return []models.Appointment{{AppointmentID: "a1", PatientID: "p1", DoctorID: "d1", Status: models.StatusProgramada}}, nil
		},
	}
	p := newTestProvider(mock)
	assert.NoError(t, p.Load(context.Background()))

	err := p.UpdateAppointment(context.Background(), "a1", models.Appointment{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-01", Time: "10:00",
		Status: models.StatusEnProceso,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, mock.UpdateAppointmentCalls)
	assert.Equal(t, models.StatusEnProceso, p.Appointments()[0].Status)
}

func TestCreateAppointmentDenormalizesNames(t *testing.T) {
	mock := &MockStore{
		ListPatientsFunc: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{{PatientID: "p1", Name: "Juan Pérez"}}, nil
		},
		ListDoctorsFunc: func(ctx context.Context) ([]models.Doctor, error) {
			return []models.Doctor{{DoctorID: "d1", Name: "Dra. Gómez"}}, nil
		},
	}
	p := newTestProvider(mock)
	assert.NoError(t, p.Load(context.Background()))

	created, err := p.CreateAppointment(context.Background(), models.Appointment{
		PatientID: "p1", DoctorID: "d1", Date: "2026-09-01", Time: "09:30",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Juan Pérez", created.PatientName)
	assert.Equal(t, "Dra. Gómez", created.DoctorName)
}

func TestOnChangeFiresAfterMutation(t *testing.T) {
	p := newTestProvider(&MockStore{})
	fired := 0
	p.OnChange(func() { fired++ })

	_, err := p.CreatePatient(context.Background(), models.Patient{Name: "Ana López"})
	assert.NoError(t, err)
	assert.Equal(t, 1, fired)

	// failed mutation must not notify
	mock := &MockStore{
		CreatePatientFunc: func(ctx context.Context, pat models.Patient) (models.Patient, error) {
			return models.Patient{}, errors.New("insert failed")
		},
	}
	p2 := newTestProvider(mock)
	p2.OnChange(func() { fired += 10 })
	_, _ = p2.CreatePatient(context.Background(), models.Patient{Name: "Ana López"})
	assert.Equal(t, 1, fired)
}
