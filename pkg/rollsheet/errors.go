package rollsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/parser"
)

// ErrNoSlots indicates the template has no single-row merge over the name columns.
var ErrNoSlots = parser.ErrNoSlots

// ErrSheetNotFound indicates the requested template sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidTemplate indicates the template is not a readable xlsx document.
var ErrInvalidTemplate = parser.ErrInvalidTemplate

// Stage names the generation step that failed.
type Stage string

const (
	StageSource        Stage = "source"
	StageDetection     Stage = "detection"
	StagePagination    Stage = "pagination"
	StageMapping       Stage = "mapping"
	StageSerialization Stage = "serialization"
)

// StageError represents a fatal error during generation.
type StageError struct {
	Stage     Stage
	SheetName string
	Err       error
}

func (e *StageError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed in sheet %q: %v", e.Stage, e.SheetName, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, sheetName string, err error) *StageError {
	return &StageError{
		Stage:     stage,
		SheetName: sheetName,
		Err:       err,
	}
}

// StageOf returns the stage of the first StageError in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
