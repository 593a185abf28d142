package models

import "time"

// ReportContext holds the report-level metadata written on every page.
type ReportContext struct {
	// Date is the activity date.
	Date time.Time
	// Place is where the activity happened.
	Place string
	// Start and End are the activity window; only the clock part is printed.
	Start time.Time
	End   time.Time
	// Program is the strategy or program label.
	Program string
	// Unit is the issuing police direction or delegation.
	Unit string
	// Notes and Agreements are the free-text boxes below the table.
	Notes      string
	Agreements string
	// Signatory is the optional name of the person signing the sheet.
	Signatory string
}
