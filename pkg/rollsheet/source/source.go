// Package source reads attendance records from files and databases.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoRecords indicates the input holds no record table at all, not even a header.
var ErrNoRecords = errors.New("no records")

// ErrMissingColumn indicates the record table has no name column.
var ErrMissingColumn = errors.New("missing column")

// Source supplies an ordered record set.
type Source interface {
	Records(ctx context.Context) ([]models.AttendanceRecord, error)
}

// Slice is an in-memory source.
type Slice []models.AttendanceRecord

// Records returns a copy of the slice.
func (s Slice) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.AttendanceRecord, len(s))
	copy(out, s)
	return out, nil
}

// Open returns the source for ref. Postgres URLs and "sqlite:" references
// select the SQL source; otherwise the file extension decides.
func Open(ref, sheet string) (Source, error) {
	switch {
	case strings.HasPrefix(ref, "postgres://"), strings.HasPrefix(ref, "postgresql://"):
		return &SQL{Driver: DriverPostgres, DSN: ref}, nil
	case strings.HasPrefix(ref, "sqlite:"):
		return &SQL{Driver: DriverSQLite, DSN: strings.TrimPrefix(ref, "sqlite:")}, nil
	}

	switch ext := strings.ToLower(filepath.Ext(ref)); ext {
	case ".csv":
		return &CSV{Path: ref}, nil
	case ".yaml", ".yml", ".json":
		return &YAML{Path: ref}, nil
	case ".xlsx", ".xlsm":
		return &XLSX{Path: ref, Sheet: sheet}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &SQL{Driver: DriverSQLite, DSN: ref}, nil
	default:
		return nil, fmt.Errorf("unsupported record source %q", ref)
	}
}

// Filtered keeps only the records of the given delegations.
type Filtered struct {
	Source      Source
	Delegations []string
}

// Records reads the wrapped source and applies the delegation filter.
func (f *Filtered) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	records, err := f.Source.Records(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDelegation(records, f.Delegations), nil
}

// FilterByDelegation returns the records whose organization matches one of
// delegations, ignoring case and surrounding space. Input order is kept.
// An empty delegation list keeps every record.
func FilterByDelegation(records []models.AttendanceRecord, delegations []string) []models.AttendanceRecord {
	if len(delegations) == 0 {
		return records
	}
	want := make(map[string]struct{}, len(delegations))
	for _, d := range delegations {
		want[normalizeKey(d)] = struct{}{}
	}
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := want[normalizeKey(rec.Organization)]; ok {
			out = append(out, rec)
		}
	}
	return out
}

type field int

const (
	fieldName field = iota
	fieldID
	fieldOrganization
	fieldRole
	fieldPhone
	fieldGender
	fieldSex
	fieldAge
)

// columnAliases maps normalized header labels to record fields.
var columnAliases = map[string]field{
	"nombre":              fieldName,
	"nombre completo":     fieldName,
	"name":                fieldName,
	"cedula":              fieldID,
	"cedula de identidad": fieldID,
	"id":                  fieldID,
	"id_number":           fieldID,
	"institucion":         fieldOrganization,
	"delegacion":          fieldOrganization,
	"organization":        fieldOrganization,
	"cargo":               fieldRole,
	"role":                fieldRole,
	"telefono":            fieldPhone,
	"phone":               fieldPhone,
	"genero":              fieldGender,
	"gender":              fieldGender,
	"sexo":                fieldSex,
	"sex":                 fieldSex,
	"edad":                fieldAge,
	"rango de edad":       fieldAge,
	"age_range":           fieldAge,
}

// normalizeKey lowercases s and strips combining marks, so "Delegación" and
// "delegacion" compare equal.
func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	return strings.ToLower(s)
}

// columnIndex maps record fields to positions of a header row.
type columnIndex map[field]int

func indexHeader(header []string) (columnIndex, error) {
	idx := columnIndex{}
	for i, h := range header {
		f, ok := columnAliases[normalizeKey(h)]
		if !ok {
			continue
		}
		if _, seen := idx[f]; !seen {
			idx[f] = i
		}
	}
	if _, ok := idx[fieldName]; !ok {
		return nil, fmt.Errorf("%w: nombre", ErrMissingColumn)
	}
	return idx, nil
}

func (c columnIndex) get(row []string, f field) string {
	i, ok := c[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// record builds a record from a data row. Blank rows report false.
func (c columnIndex) record(row []string) (models.AttendanceRecord, bool) {
	blank := true
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			blank = false
			break
		}
	}
	if blank {
		return models.AttendanceRecord{}, false
	}
	return fromFields(func(f field) string { return c.get(row, f) }), true
}

// fromMap builds a record from keyed values, resolving keys through the header aliases.
func fromMap(m map[string]string) models.AttendanceRecord {
	byField := make(map[field]string, len(m))
	for k, v := range m {
		if f, ok := columnAliases[normalizeKey(k)]; ok {
			if _, seen := byField[f]; !seen {
				byField[f] = strings.TrimSpace(v)
			}
		}
	}
	return fromFields(func(f field) string { return byField[f] })
}

func fromFields(get func(field) string) models.AttendanceRecord {
	return models.AttendanceRecord{
		Name:         get(fieldName),
		IDNumber:     get(fieldID),
		Organization: get(fieldOrganization),
		Role:         get(fieldRole),
		Phone:        get(fieldPhone),
		Gender:       models.ParseGender(get(fieldGender)),
		Sex:          models.ParseSex(get(fieldSex)),
		AgeRange:     models.ParseAgeRange(get(fieldAge)),
	}
}

func collect(header []string, rows [][]string) ([]models.AttendanceRecord, error) {
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}
	records := make([]models.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := idx.record(row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
