package store

import (
	"context"
	"encoding/json"
	"fmt"

	"dentadmin_back_end_go/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PgStore implements Store on a pgx connection pool.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	// COALESCE guards rows written outside this API before the text columns
	// gained their NOT NULL defaults.
	rows, err := s.pool.Query(ctx, `
		SELECT patient_id, name, COALESCE(email, ''), COALESCE(phone, ''),
			TO_CHAR(birth_date, 'YYYY-MM-DD'),
			COALESCE(gender, ''), COALESCE(address, ''),
			COALESCE(emergency_contact, ''), COALESCE(emergency_phone, ''),
			COALESCE(insurance, ''), COALESCE(medical_notes, ''),
			COALESCE(allergies, ''), COALESCE(medications, '')
		FROM patients
		ORDER BY create_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		var p models.Patient
		err := rows.Scan(&p.PatientID, &p.Name, &p.Email, &p.Phone, &p.BirthDate,
			&p.Gender, &p.Address, &p.EmergencyContact, &p.EmergencyPhone, &p.Insurance,
			&p.MedicalNotes, &p.Allergies, &p.Medications)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (s *PgStore) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	patient.PatientID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO patients (
			patient_id, name, email, phone, birth_date, gender, address,
			emergency_contact, emergency_phone, insurance, medical_notes,
			allergies, medications
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		patient.PatientID, patient.Name, patient.Email, patient.Phone, patient.BirthDate,
		patient.Gender, patient.Address, patient.EmergencyContact, patient.EmergencyPhone,
		patient.Insurance, patient.MedicalNotes, patient.Allergies, patient.Medications)
	if err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (s *PgStore) UpdatePatient(ctx context.Context, patientId string, patient models.Patient) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE patients SET
			name = $2, email = $3, phone = $4, birth_date = $5, gender = $6,
			address = $7, emergency_contact = $8, emergency_phone = $9,
			insurance = $10, medical_notes = $11, allergies = $12,
			medications = $13, update_at = NOW()
		WHERE patient_id = $1`,
		patientId, patient.Name, patient.Email, patient.Phone, patient.BirthDate,
		patient.Gender, patient.Address, patient.EmergencyContact, patient.EmergencyPhone,
		patient.Insurance, patient.MedicalNotes, patient.Allergies, patient.Medications)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("patient %s not found", patientId)
	}
	return nil
}

func (s *PgStore) DeletePatient(ctx context.Context, patientId string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM patients WHERE patient_id = $1", patientId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("patient %s not found", patientId)
	}
	return nil
}

func (s *PgStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT doctor_id, name, COALESCE(email, ''), COALESCE(phone, ''),
			specialty, COALESCE(license_number, ''),
			years_experience, status, COALESCE(description, ''),
			COALESCE(education, ''), COALESCE(certifications, ''),
			schedule, consultation_fee, COALESCE(address, ''), languages
		FROM doctors
		ORDER BY create_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []models.Doctor
	for rows.Next() {
		var d models.Doctor
		var schedule, languages []byte
		err := rows.Scan(&d.DoctorID, &d.Name, &d.Email, &d.Phone, &d.Specialty,
			&d.LicenseNumber, &d.YearsExperience, &d.Status, &d.Description,
			&d.Education, &d.Certifications, &schedule, &d.ConsultationFee,
			&d.Address, &languages)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(schedule, &d.Schedule); err != nil {
			return nil, fmt.Errorf("bad schedule for doctor %s: %v", d.DoctorID, err)
		}
		if err := json.Unmarshal(languages, &d.Languages); err != nil {
			return nil, fmt.Errorf("bad languages for doctor %s: %v", d.DoctorID, err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (s *PgStore) CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	doctor.DoctorID = uuid.NewString()
	if doctor.Status == "" {
		doctor.Status = models.DoctorOffline
	}
	schedule, languages, err := encodeDoctor(doctor)
	if err != nil {
		return models.Doctor{}, err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO doctors (
			doctor_id, name, email, phone, specialty, license_number,
			years_experience, status, description, education, certifications,
			schedule, consultation_fee, address, languages
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		doctor.DoctorID, doctor.Name, doctor.Email, doctor.Phone, doctor.Specialty,
		doctor.LicenseNumber, doctor.YearsExperience, doctor.Status, doctor.Description,
		doctor.Education, doctor.Certifications, schedule, doctor.ConsultationFee,
		doctor.Address, languages)
	if err != nil {
		return models.Doctor{}, err
	}
	return doctor, nil
}

func (s *PgStore) UpdateDoctor(ctx context.Context, doctorId string, doctor models.Doctor) error {
	schedule, languages, err := encodeDoctor(doctor)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE doctors SET
			name = $2, email = $3, phone = $4, specialty = $5,
			license_number = $6, years_experience = $7, status = $8,
			description = $9, education = $10, certifications = $11,
			schedule = $12, consultation_fee = $13, address = $14,
			languages = $15, update_at = NOW()
		WHERE doctor_id = $1`,
		doctorId, doctor.Name, doctor.Email, doctor.Phone, doctor.Specialty,
		doctor.LicenseNumber, doctor.YearsExperience, doctor.Status, doctor.Description,
		doctor.Education, doctor.Certifications, schedule, doctor.ConsultationFee,
		doctor.Address, languages)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("doctor %s not found", doctorId)
	}
	return nil
}

func (s *PgStore) DeleteDoctor(ctx context.Context, doctorId string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM doctors WHERE doctor_id = $1", doctorId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("doctor %s not found", doctorId)
	}
	return nil
}

func encodeDoctor(doctor models.Doctor) ([]byte, []byte, error) {
	if doctor.Schedule == nil {
		doctor.Schedule = map[string]models.ScheduleDay{}
	}
	if doctor.Languages == nil {
		doctor.Languages = []string{}
	}
	schedule, err := json.Marshal(doctor.Schedule)
	if err != nil {
		return nil, nil, err
	}
	languages, err := json.Marshal(doctor.Languages)
	if err != nil {
		return nil, nil, err
	}
	return schedule, languages, nil
}

func (s *PgStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	// LEFT JOIN: references are weak, a deleted patient or doctor leaves
	// the appointment behind with an empty display name.
	rows, err := s.pool.Query(ctx, `
		SELECT
			appointments.appointment_id,
			appointments.patient_id,
			appointments.doctor_id,
			COALESCE(patients.name, ''),
			COALESCE(doctors.name, ''),
			TO_CHAR(appointments.date, 'YYYY-MM-DD'),
			appointments.time,
			COALESCE(appointments.type, ''),
			appointments.status,
			COALESCE(appointments.notes, '')
		FROM
			appointments
		LEFT JOIN
			patients ON appointments.patient_id = patients.patient_id
		LEFT JOIN
			doctors ON appointments.doctor_id = doctors.doctor_id
		ORDER BY appointments.date, appointments.time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.DoctorID,
			&a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Type,
			&a.Status, &a.Notes)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (s *PgStore) CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	appointment.AppointmentID = uuid.NewString()
	if appointment.Status == "" {
		appointment.Status = models.StatusProgramada
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO appointments (appointment_id, patient_id, doctor_id, date, time, type, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		appointment.AppointmentID, appointment.PatientID, appointment.DoctorID,
		appointment.Date, appointment.Time, appointment.Type, appointment.Status,
		appointment.Notes)
	if err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (s *PgStore) UpdateAppointment(ctx context.Context, appointmentId string, appointment models.Appointment) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE appointments SET
			patient_id = $2, doctor_id = $3, date = $4, time = $5,
			type = $6, status = $7, notes = $8, update_at = NOW()
		WHERE appointment_id = $1`,
		appointmentId, appointment.PatientID, appointment.DoctorID, appointment.Date,
		appointment.Time, appointment.Type, appointment.Status, appointment.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", appointmentId)
	}
	return nil
}

func (s *PgStore) DeleteAppointment(ctx context.Context, appointmentId string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM appointments WHERE appointment_id = $1", appointmentId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", appointmentId)
	}
	return nil
}

func (s *PgStore) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM patients").Scan(&stats.TotalPatients)
	if err != nil {
		return models.Stats{}, err
	}
	err = s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM appointments").Scan(&stats.TotalAppointments)
	if err != nil {
		return models.Stats{}, err
	}
	err = s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM appointments WHERE date = CURRENT_DATE").Scan(&stats.TodayAppointments)
	if err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}
