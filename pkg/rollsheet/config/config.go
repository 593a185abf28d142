// Package config loads generation settings from a YAML file, an optional
// .env file and ROLLSHEET_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/compose"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROLLSHEET_"

// Date and clock layouts accepted in report fields.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var dateLayouts = []string{DateLayout, "02/01/2006", "2/1/2006"}

// Config holds the settings of one generation run.
type Config struct {
	Template      string `yaml:"template"`
	TemplateSheet string `yaml:"template_sheet"`
	Records       string `yaml:"records"`
	RecordsSheet  string `yaml:"records_sheet"`
	Output        string `yaml:"output"`
	SheetName     string `yaml:"sheet_name" validate:"max=31"`
	Slots         int    `yaml:"slots" validate:"gte=1,lte=1000"`
	Workers       int    `yaml:"workers" validate:"gte=0"`
	Locale        string `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	// MarkSymbol and MethodMarker keep library defaults when unset.
	MarkSymbol   *string       `yaml:"mark_symbol"`
	MethodMarker *string       `yaml:"method_marker"`
	Delegations  []string      `yaml:"delegations"`
	Logos        []models.Logo `yaml:"logos" validate:"dive"`
	Report       Report        `yaml:"report"`
}

// Report holds the header fields of the sheet.
type Report struct {
	Date       string `yaml:"date"`
	Place      string `yaml:"place"`
	Start      string `yaml:"start" validate:"omitempty,datetime=15:04"`
	End        string `yaml:"end" validate:"omitempty,datetime=15:04"`
	Program    string `yaml:"program"`
	Unit       string `yaml:"unit"`
	Notes      string `yaml:"notes"`
	Agreements string `yaml:"agreements"`
	Signatory  string `yaml:"signatory"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SheetName: compose.DefaultSheetName,
		Slots:     models.DefaultSlotCount,
		Locale:    rollsheet.DefaultLocale,
		Logos:     rollsheet.DefaultLogos(),
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment without overriding existing ones. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from ROLLSHEET_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"TEMPLATE":          &c.Template,
		"TEMPLATE_SHEET":    &c.TemplateSheet,
		"RECORDS":           &c.Records,
		"RECORDS_SHEET":     &c.RecordsSheet,
		"OUTPUT":            &c.Output,
		"SHEET_NAME":        &c.SheetName,
		"LOCALE":            &c.Locale,
		"REPORT_DATE":       &c.Report.Date,
		"REPORT_PLACE":      &c.Report.Place,
		"REPORT_START":      &c.Report.Start,
		"REPORT_END":        &c.Report.End,
		"REPORT_PROGRAM":    &c.Report.Program,
		"REPORT_UNIT":       &c.Report.Unit,
		"REPORT_NOTES":      &c.Report.Notes,
		"REPORT_AGREEMENTS": &c.Report.Agreements,
		"REPORT_SIGNATORY":  &c.Report.Signatory,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SLOTS":   &c.Slots,
		"WORKERS": &c.Workers,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "MARK_SYMBOL"); ok {
		c.MarkSymbol = &v
	}
	if v, ok := lookup(EnvPrefix + "METHOD_MARKER"); ok {
		c.MethodMarker = &v
	}
	if v, ok := lookup(EnvPrefix + "DELEGATIONS"); ok {
		c.Delegations = splitList(v)
	}
	return nil
}

// Validate checks field constraints and the report date.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Report.Date != "" {
		if _, err := ParseDate(c.Report.Date); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

// Options converts the configuration into generation options. tpl is the
// template content, nil for scratch mode.
func (c Config) Options(tpl []byte) rollsheet.Options {
	opts := rollsheet.DefaultOptions()
	opts.Template = tpl
	opts.TemplateSheet = c.TemplateSheet
	if c.SheetName != "" {
		opts.SheetName = c.SheetName
	}
	if c.Slots > 0 {
		opts.SlotCount = c.Slots
	}
	if c.Locale != "" {
		opts.Locale = c.Locale
	}
	opts.Workers = c.Workers
	opts.MarkSymbol = c.MarkSymbol
	opts.MethodMarker = c.MethodMarker
	opts.Logos = c.Logos
	return opts
}

// ReportContext parses the report fields. An empty date means now.
func (c Config) ReportContext(now time.Time) (models.ReportContext, error) {
	r := c.Report
	rc := models.ReportContext{
		Date:       now,
		Place:      r.Place,
		Program:    r.Program,
		Unit:       r.Unit,
		Notes:      r.Notes,
		Agreements: r.Agreements,
		Signatory:  r.Signatory,
	}
	var err error
	if r.Date != "" {
		if rc.Date, err = ParseDate(r.Date); err != nil {
			return models.ReportContext{}, err
		}
	}
	if rc.Start, err = parseClock(r.Start); err != nil {
		return models.ReportContext{}, err
	}
	if rc.End, err = parseClock(r.End); err != nil {
		return models.ReportContext{}, err
	}
	return rc, nil
}

// ParseDate accepts ISO dates and day-first slash dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want %s)", s, DateLayout)
}

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return t, nil
}

// DefaultOutputName returns the output file name for a report dated d.
func DefaultOutputName(d time.Time) string {
	return "Lista_Asistencia_Oficial_" + d.Format("20060102") + ".xlsx"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
