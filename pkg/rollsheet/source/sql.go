package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DefaultQuery reads the attendance table in insertion order. Its columns
// must come in record field order.
const DefaultQuery = `SELECT nombre, cedula, institucion, cargo, telefono, genero, sexo, edad FROM asistencia ORDER BY id ASC`

// SQL reads records from a database table.
type SQL struct {
	Driver string
	DSN    string
	// Query overrides DefaultQuery. It must select the eight record columns in order.
	Query string
	// DB is used instead of opening Driver/DSN when set.
	DB *sql.DB
}

// Records implements Source.
func (s *SQL) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	db := s.DB
	if db == nil {
		var err error
		db, err = sql.Open(s.Driver, s.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s database: %w", s.Driver, err)
		}
		defer db.Close()
	}

	query := s.Query
	if query == "" {
		query = DefaultQuery
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var cols [8]sql.NullString
		if err := rows.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7]); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, fromFields(func(f field) string { return cols[f].String }))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}
