package provider

import (
	"context"
	"errors"
	"sync"

	"dentadmin_back_end_go/models"
	"dentadmin_back_end_go/store"

	"github.com/sirupsen/logrus"
)

// ErrBadTransition is returned when an appointment update requests a status
// jump the edit form does not offer.
var ErrBadTransition = errors.New("illegal appointment status transition")

// ErrStale is returned when a load finished after the provider moved on
// (another Load started, or Close was called). The result is discarded.
var ErrStale = errors.New("stale load discarded")

var ErrNotFound = errors.New("record not found")

// Provider is the single source of truth for one dashboard session. It
// mirrors the three collections held by the store and reconciles them after
// every successful mutation. Mutation failures leave the collections exactly
// as they were.
type Provider struct {
	store  store.Store
	logger *logrus.Logger
	notify func()

	mu           sync.Mutex
	gen          uint64
	loading      bool
	loadErr      error
	patients     []models.Patient
	doctors      []models.Doctor
	appointments []models.Appointment
	stats        models.Stats
}

func New(s store.Store, logger *logrus.Logger) *Provider {
	return &Provider{store: s, logger: logger}
}

// OnChange registers a callback invoked after every successful mutation.
// The websocket hub uses it to ping open dashboards.
func (p *Provider) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notify = fn
}

func (p *Provider) changed() {
	p.mu.Lock()
	fn := p.notify
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Load fetches all three collections plus the stats projection and replaces
// the in-memory state. A Load that finishes after a newer Load started (or
// after Close) is discarded, so a torn-down session never absorbs a late
// response.
func (p *Provider) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	patients, err := p.store.ListPatients(ctx)
	if err != nil {
		return p.loadFailed(gen, err)
	}
	doctors, err := p.store.ListDoctors(ctx)
	if err != nil {
		return p.loadFailed(gen, err)
	}
	appointments, err := p.store.ListAppointments(ctx)
	if err != nil {
		return p.loadFailed(gen, err)
	}
	stats, err := p.store.Stats(ctx)
	if err != nil {
		return p.loadFailed(gen, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return ErrStale
	}
	p.patients = patients
	p.doctors = doctors
	p.appointments = appointments
	p.stats = stats
	p.loading = false
	p.loadErr = nil
	return nil
}

func (p *Provider) loadFailed(gen uint64, err error) error {
	p.logger.WithFields(logrus.Fields{
		"Function": "Load",
	}).Errorf("dashboard load failed: %v", err)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return ErrStale
	}
	p.loading = false
	p.loadErr = err
	return err
}

// Close abandons the session. Any in-flight Load result arriving afterwards
// is discarded.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.patients = nil
	p.doctors = nil
	p.appointments = nil
	p.stats = models.Stats{}
}

func (p *Provider) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Provider) LoadErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadErr
}

func (p *Provider) Patients() []models.Patient {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Patient, len(p.patients))
	copy(out, p.patients)
	return out
}

func (p *Provider) Doctors() []models.Doctor {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Doctor, len(p.doctors))
	copy(out, p.doctors)
	return out
}

func (p *Provider) Appointments() []models.Appointment {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Appointment, len(p.appointments))
	copy(out, p.appointments)
	return out
}

// Stats returns the projection fetched by the last Load. Mutations do not
// refresh it; the next Load does.
func (p *Provider) Stats() models.Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Provider) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	created, err := p.store.CreatePatient(ctx, patient)
	if err != nil {
		return models.Patient{}, err
	}
	p.mu.Lock()
	p.patients = append(p.patients, created)
	p.mu.Unlock()
	p.changed()
	return created, nil
}

func (p *Provider) UpdatePatient(ctx context.Context, patientId string, patient models.Patient) error {
	if err := p.store.UpdatePatient(ctx, patientId, patient); err != nil {
		return err
	}
	patient.PatientID = patientId
	p.mu.Lock()
	for i := range p.patients {
		if p.patients[i].PatientID == patientId {
			p.patients[i] = patient
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}

func (p *Provider) DeletePatient(ctx context.Context, patientId string) error {
	if err := p.store.DeletePatient(ctx, patientId); err != nil {
		return err
	}
	p.mu.Lock()
	for i := range p.patients {
		if p.patients[i].PatientID == patientId {
			p.patients = append(p.patients[:i], p.patients[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}

func (p *Provider) CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	created, err := p.store.CreateDoctor(ctx, doctor)
	if err != nil {
		return models.Doctor{}, err
	}
	p.mu.Lock()
	p.doctors = append(p.doctors, created)
	p.mu.Unlock()
	p.changed()
	return created, nil
}

func (p *Provider) UpdateDoctor(ctx context.Context, doctorId string, doctor models.Doctor) error {
	if err := p.store.UpdateDoctor(ctx, doctorId, doctor); err != nil {
		return err
	}
	doctor.DoctorID = doctorId
	p.mu.Lock()
	for i := range p.doctors {
		if p.doctors[i].DoctorID == doctorId {
			p.doctors[i] = doctor
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}

func (p *Provider) DeleteDoctor(ctx context.Context, doctorId string) error {
	if err := p.store.DeleteDoctor(ctx, doctorId); err != nil {
		return err
	}
	p.mu.Lock()
	for i := range p.doctors {
		if p.doctors[i].DoctorID == doctorId {
			p.doctors = append(p.doctors[:i], p.doctors[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}

// CreateAppointment does not verify that the referenced patient and doctor
// still exist; references are weak. Display names are denormalized from the
// in-memory collections when present.
func (p *Provider) CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	created, err := p.store.CreateAppointment(ctx, appointment)
	if err != nil {
		return models.Appointment{}, err
	}
	p.mu.Lock()
	for _, pat := range p.patients {
		if pat.PatientID == created.PatientID {
			created.PatientName = pat.Name
			break
		}
	}
	for _, doc := range p.doctors {
		if doc.DoctorID == created.DoctorID {
			created.DoctorName = doc.Name
			break
		}
	}
	p.appointments = append(p.appointments, created)
	p.mu.Unlock()
	p.changed()
	return created, nil
}

// UpdateAppointment enforces the status graph before touching the store:
// programada may move to en_proceso or cancelada, en_proceso to completada
// or cancelada, and completed/cancelled appointments are terminal.
func (p *Provider) UpdateAppointment(ctx context.Context, appointmentId string, appointment models.Appointment) error {
	p.mu.Lock()
	var current *models.Appointment
	for i := range p.appointments {
		if p.appointments[i].AppointmentID == appointmentId {
			current = &p.appointments[i]
			break
		}
	}
	if current == nil {
		p.mu.Unlock()
		return ErrNotFound
	}
	if appointment.Status == "" {
		appointment.Status = current.Status
	}
	if !models.ValidStatusTransition(current.Status, appointment.Status) {
		from, to := current.Status, appointment.Status
		p.mu.Unlock()
		p.logger.WithFields(logrus.Fields{
			"Function":      "UpdateAppointment",
			"AppointmentId": appointmentId,
			"From":          from,
			"To":            to,
		}).Warn("Rejected status transition")
		return ErrBadTransition
	}
	p.mu.Unlock()

	if err := p.store.UpdateAppointment(ctx, appointmentId, appointment); err != nil {
		return err
	}
	appointment.AppointmentID = appointmentId
	p.mu.Lock()
	for i := range p.appointments {
		if p.appointments[i].AppointmentID == appointmentId {
			for _, pat := range p.patients {
				if pat.PatientID == appointment.PatientID {
					appointment.PatientName = pat.Name
					break
				}
			}
			for _, doc := range p.doctors {
				if doc.DoctorID == appointment.DoctorID {
					appointment.DoctorName = doc.Name
					break
				}
			}
			p.appointments[i] = appointment
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}

func (p *Provider) DeleteAppointment(ctx context.Context, appointmentId string) error {
	if err := p.store.DeleteAppointment(ctx, appointmentId); err != nil {
		return err
	}
	p.mu.Lock()
	for i := range p.appointments {
		if p.appointments[i].AppointmentID == appointmentId {
			p.appointments = append(p.appointments[:i], p.appointments[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	p.changed()
	return nil
}
