// Package models defines data structures for attendance sheet composition.
package models

import "strings"

// Gender is the printed gender category of an attendee.
type Gender string

const (
	GenderF     Gender = "F"
	GenderM     Gender = "M"
	GenderOther Gender = "LGBTIQ+"
)

// Sex is the printed sex category of an attendee (Hombre, Mujer, Intersex).
type Sex string

const (
	SexH Sex = "H"
	SexM Sex = "M"
	SexI Sex = "I"
)

// AgeRange is the printed age bracket of an attendee.
type AgeRange string

const (
	Age18To35 AgeRange = "18 a 35 años"
	Age36To64 AgeRange = "36 a 64 años"
	Age65Plus AgeRange = "65 años o más"
)

// Genders, Sexes and AgeRanges list the categories in mark-column order.
var (
	Genders   = [3]Gender{GenderF, GenderM, GenderOther}
	Sexes     = [3]Sex{SexH, SexM, SexI}
	AgeRanges = [3]AgeRange{Age18To35, Age36To64, Age65Plus}
)

// AttendanceRecord represents one attendee row of the sheet.
type AttendanceRecord struct {
	// Name is the attendee full name.
	Name string `json:"name" yaml:"name"`
	// IDNumber is the identity document number, kept verbatim (leading zeros matter).
	IDNumber string `json:"id_number" yaml:"id_number"`
	// Organization is the institution or delegation the attendee represents.
	Organization string `json:"organization" yaml:"organization"`
	// Role is the attendee title or position.
	Role string `json:"role" yaml:"role"`
	// Phone is the contact phone, kept verbatim.
	Phone string `json:"phone" yaml:"phone"`
	// Gender selects one of the gender mark columns.
	Gender Gender `json:"gender" yaml:"gender"`
	// Sex selects one of the sex mark columns.
	Sex Sex `json:"sex" yaml:"sex"`
	// AgeRange selects one of the age mark columns.
	AgeRange AgeRange `json:"age_range" yaml:"age_range"`
}

// ParseGender normalizes a raw gender value. Unknown input is returned
// trimmed and unchanged so that it maps to no column.
func ParseGender(s string) Gender {
	v := strings.TrimSpace(s)
	switch strings.ToUpper(v) {
	case "F":
		return GenderF
	case "M":
		return GenderM
	case "LGBTIQ+", "OTHER", "OTRO", "O":
		return GenderOther
	}
	return Gender(v)
}

// Index returns the mark column offset of g, or -1 when g is not a known category.
func (g Gender) Index() int {
	for i, v := range Genders {
		if g == v {
			return i
		}
	}
	return -1
}

// ParseSex normalizes a raw sex value.
func ParseSex(s string) Sex {
	v := strings.TrimSpace(s)
	switch strings.ToUpper(v) {
	case "H", "HOMBRE":
		return SexH
	case "M", "MUJER":
		return SexM
	case "I", "INTERSEX":
		return SexI
	}
	return Sex(v)
}

// Index returns the mark column offset of s, or -1 when s is not a known category.
func (s Sex) Index() int {
	for i, v := range Sexes {
		if s == v {
			return i
		}
	}
	return -1
}

// ParseAgeRange normalizes a raw age bracket by its leading number
// ("18", "36", "65"), so "18-35" and "18 a 35 años" are the same bracket.
func ParseAgeRange(s string) AgeRange {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "18"):
		return Age18To35
	case strings.HasPrefix(v, "36"):
		return Age36To64
	case strings.HasPrefix(v, "65"):
		return Age65Plus
	}
	return AgeRange(v)
}

// Index returns the mark column offset of a, or -1 when a is not a known bracket.
func (a AgeRange) Index() int {
	for i, v := range AgeRanges {
		if a == v {
			return i
		}
	}
	return -1
}
