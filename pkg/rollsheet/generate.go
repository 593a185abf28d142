package rollsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/compose"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/parser"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/writer"
)

// RecordSource supplies the ordered record set of one generation run.
type RecordSource interface {
	Records(ctx context.Context) ([]models.AttendanceRecord, error)
}

// Plan is the layout a generation run fills: the base page, where its slots
// are and where its header fields go.
type Plan struct {
	Base    *models.Sheet
	Layout  models.TemplateLayout
	Anchors models.HeaderAnchors
	// Drawings is the template drawing inventory; zero in scratch mode.
	Drawings parser.DrawingInventory
}

// Generate composes the document and renders it as xlsx bytes.
// On any error no bytes are returned.
func Generate(ctx context.Context, records []models.AttendanceRecord, rc models.ReportContext, opts Options) ([]byte, error) {
	doc, err := Compose(ctx, records, rc, opts)
	if err != nil {
		return nil, err
	}
	data, err := writer.Bytes(doc)
	if err != nil {
		return nil, NewStageError(StageSerialization, "", err)
	}
	return data, nil
}

// GenerateFrom reads the records from src and generates the document.
func GenerateFrom(ctx context.Context, src RecordSource, rc models.ReportContext, opts Options) ([]byte, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, NewStageError(StageSource, "", err)
	}
	return Generate(ctx, records, rc, opts)
}

// Compose builds the in-memory document: one sheet per page of records.
func Compose(ctx context.Context, records []models.AttendanceRecord, rc models.ReportContext, opts Options) (*models.Document, error) {
	log := opts.logger().With().Str("run_id", uuid.NewString()).Logger()

	plan, err := Prepare(opts)
	if err != nil {
		return nil, err
	}
	if n := plan.Drawings.Uncarried(); n > 0 {
		log.Warn().Int("objects", n).Strs("texts", plan.Drawings.ShapeTexts).
			Msg("template shapes and charts are not carried to generated pages")
	}
	stampLogos(plan.Base, opts.Logos, log)

	mapper := compose.NewMapper(plan.Layout.Columns)
	mapper.MarkSymbol = opts.ResolvedMarkSymbol()
	mapper.MethodMarker = opts.ResolvedMethodMarker()
	mapper.Logger = log

	engine := &compose.Engine{
		Layout:  plan.Layout,
		Anchors: plan.Anchors,
		Header:  compose.NewHeaderInjector(opts.locale()),
		Mapper:  mapper,
		Workers: opts.Workers,
		Logger:  log,
	}

	log.Info().Str("mode", string(opts.ResolvedMode())).Int("records", len(records)).
		Int("slots", plan.Layout.SlotCount).Msg("composing attendance sheet")

	doc, err := engine.Paginate(ctx, plan.Base, records, rc)
	if err != nil {
		return nil, pageStageError(err)
	}

	log.Info().Int("pages", len(doc.Sheets)).Strs("sheets", doc.SheetNames()).Msg("document composed")
	return doc, nil
}

// Prepare resolves the base page and layout for opts without writing anything.
func Prepare(opts Options) (*Plan, error) {
	switch mode := opts.ResolvedMode(); mode {
	case ModeScratch:
		layout := models.DefaultLayout(opts.SlotCount)
		return &Plan{
			Base:    compose.BuildScratchSheet(opts.sheetName(), layout),
			Layout:  layout,
			Anchors: compose.ScratchAnchors(layout),
		}, nil
	case ModeTemplate:
		if len(opts.Template) == 0 {
			return nil, NewStageError(StageDetection, opts.TemplateSheet, fmt.Errorf("%w: template is empty", ErrInvalidTemplate))
		}
		tpl, err := parser.LoadTemplate(opts.Template, opts.TemplateSheet)
		if err != nil {
			return nil, NewStageError(StageDetection, opts.TemplateSheet, err)
		}
		layout, err := parser.DetectLayout(tpl.Sheet, opts.nameSpan())
		if err != nil {
			return nil, NewStageError(StageDetection, tpl.Sheet.Name, err)
		}
		tpl.Sheet.Name = compose.SanitizeSheetName(tpl.Sheet.Name)
		return &Plan{
			Base:     tpl.Sheet,
			Layout:   layout,
			Anchors:  parser.DetectHeaderAnchors(tpl.Sheet, layout),
			Drawings: tpl.Drawings,
		}, nil
	default:
		return nil, fmt.Errorf("invalid mode: %s (must be scratch or template)", mode)
	}
}

// stampLogos anchors the logo files on the base page. Missing or unreadable
// files are skipped.
func stampLogos(base *models.Sheet, logos []models.Logo, log zerolog.Logger) {
	for _, logo := range logos {
		img, err := writer.LoadLogo(logo)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", logo.Path).Msg("logo not found, skipping")
			continue
		case err != nil:
			log.Warn().Err(err).Str("path", logo.Path).Msg("logo unreadable, skipping")
			continue
		}
		base.AddImage(img)
	}
}

func pageStageError(err error) error {
	var pe *compose.PageError
	if errors.As(err, &pe) {
		stage := StageMapping
		if pe.Op == compose.OpClone {
			stage = StagePagination
		}
		return NewStageError(stage, pe.Sheet, err)
	}
	return NewStageError(StagePagination, "", err)
}
