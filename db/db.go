package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func InitDatabase() (*pgxpool.Pool, error) {

	if err := godotenv.Load(); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	databaseName := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	conn, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS patients (
			patient_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			birth_date DATE NOT NULL,
			gender VARCHAR(10) NOT NULL DEFAULT '',
			address VARCHAR(200) NOT NULL DEFAULT '',
			emergency_contact VARCHAR(100) NOT NULL DEFAULT '',
			emergency_phone VARCHAR(50) NOT NULL DEFAULT '',
			insurance VARCHAR(100) NOT NULL DEFAULT '',
			medical_notes TEXT NOT NULL DEFAULT '',
			allergies TEXT NOT NULL DEFAULT '',
			medications TEXT NOT NULL DEFAULT '',
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS doctors (
			doctor_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			specialty VARCHAR(50) NOT NULL,
			license_number VARCHAR(50) NOT NULL DEFAULT '',
			years_experience INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'offline',
			description TEXT NOT NULL DEFAULT '',
			education TEXT NOT NULL DEFAULT '',
			certifications TEXT NOT NULL DEFAULT '',
			schedule JSONB NOT NULL DEFAULT '{}',
			consultation_fee NUMERIC NOT NULL DEFAULT 0,
			address VARCHAR(200) NOT NULL DEFAULT '',
			languages JSONB NOT NULL DEFAULT '[]',
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			appointment_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			patient_id uuid NOT NULL,
			doctor_id uuid NOT NULL,
			date DATE NOT NULL,
			time VARCHAR(5) NOT NULL,
			type VARCHAR(50) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'programada',
			notes TEXT NOT NULL DEFAULT '',
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS clinic_users (
			user_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			hashed_password VARCHAR(100) NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS verification_tokens (
			token VARCHAR(100) PRIMARY KEY,
			email VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, query := range sqlQueries {
		_, err = conn.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return conn, nil
}
