package compose

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"golang.org/x/sync/errgroup"
)

// maxSheetName is the sheet name length limit of the xlsx format.
const maxSheetName = 31

// Op names the page-construction step that failed.
type Op string

const (
	OpClone  Op = "clone"
	OpHeader Op = "header"
	OpMap    Op = "map"
)

// PageError reports a failure while constructing one page.
type PageError struct {
	Page  int
	Sheet string
	Op    Op
	Err   error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d (%s) %s: %v", e.Page+1, e.Sheet, e.Op, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// PageCount returns max(1, ceil(n/perPage)).
func PageCount(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}

// PageName returns the sheet name of page index i: the base name for the first
// page, then "base 2", "base 3", ... The base is shortened so the result fits
// the sheet name limit.
func PageName(base string, i int) string {
	if i == 0 {
		return truncateRunes(base, maxSheetName)
	}
	suffix := " " + strconv.Itoa(i+1)
	return truncateRunes(base, maxSheetName-len(suffix)) + suffix
}

// SanitizeSheetName replaces characters xlsx forbids in sheet names.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, name)
	name = strings.Trim(strings.TrimSpace(name), "'")
	if name == "" {
		return DefaultSheetName
	}
	return name
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Engine splits a record set into pages of Layout.SlotCount records and
// builds one sheet per page from a base sheet.
type Engine struct {
	Layout  models.TemplateLayout
	Anchors models.HeaderAnchors
	Header  *HeaderInjector
	Mapper  *Mapper
	// Workers bounds concurrent page construction; 0 means GOMAXPROCS.
	Workers int
	Logger  zerolog.Logger
}

// Paginate builds the document. Page 0 is base itself; every other page is a
// clone of base taken before any page is written. Pages are then filled
// concurrently, each goroutine owning exactly one sheet, and appended to the
// document in page order once all of them are done.
func (e *Engine) Paginate(ctx context.Context, base *models.Sheet, records []models.AttendanceRecord, rc models.ReportContext) (*models.Document, error) {
	perPage := e.Layout.SlotCount
	if perPage <= 0 || len(e.Layout.SlotRows) < perPage {
		return nil, fmt.Errorf("layout has %d slot rows for a capacity of %d", len(e.Layout.SlotRows), perPage)
	}

	pages := PageCount(len(records), perPage)
	sheets := make([]*models.Sheet, pages)
	sheets[0] = base
	baseName := base.Name
	base.Name = PageName(baseName, 0)
	for i := 1; i < pages; i++ {
		dup, err := base.Clone(PageName(baseName, i))
		if err != nil {
			return nil, &PageError{Page: i, Sheet: PageName(baseName, i), Op: OpClone, Err: err}
		}
		sheets[i] = dup
	}

	e.Logger.Debug().Int("records", len(records)).Int("per_page", perPage).Int("pages", pages).
		Msg("paginating records")

	g, ctx := errgroup.WithContext(ctx)
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for i := range sheets {
		start := i * perPage
		end := min(start+perPage, len(records))
		if start > end {
			start = end
		}
		page, sheet, slice := i, sheets[i], records[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.fillPage(page, sheet, start, slice, rc)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &models.Document{}
	for _, s := range sheets {
		doc.Append(s)
	}
	return doc, nil
}

// fillPage clears the slot region, writes the header and maps the records of one page.
func (e *Engine) fillPage(page int, sheet *models.Sheet, offset int, records []models.AttendanceRecord, rc models.ReportContext) error {
	cols := e.Layout.Columns
	for _, row := range e.Layout.SlotRows {
		sheet.ClearValues(models.NewRange(cols.First(), row, cols.Last(), row))
	}

	if err := e.Header.Inject(sheet, e.Anchors, rc); err != nil {
		return &PageError{Page: page, Sheet: sheet.Name, Op: OpHeader, Err: err}
	}

	for i, rec := range records {
		if err := e.Mapper.MapRecord(sheet, e.Layout.SlotRows[i], offset+i+1, rec); err != nil {
			return &PageError{Page: page, Sheet: sheet.Name, Op: OpMap, Err: err}
		}
	}

	e.Logger.Debug().Int("page", page+1).Str("sheet", sheet.Name).Int("rows", len(records)).
		Msg("page filled")
	return nil
}
