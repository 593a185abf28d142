package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

func makeRecords(n int) []models.AttendanceRecord {
	genders := []models.Gender{models.GenderF, models.GenderM, models.GenderOther}
	sexes := []models.Sex{models.SexH, models.SexM, models.SexI}
	ages := []models.AgeRange{models.Age18To35, models.Age36To64, models.Age65Plus}
	records := make([]models.AttendanceRecord, n)
	for i := range records {
		records[i] = models.AttendanceRecord{
			Name:         fmt.Sprintf("Persona %02d", i+1),
			IDNumber:     fmt.Sprintf("01%08d", i+1),
			Organization: "Delegación Norte",
			Role:         "Oficial",
			Phone:        "0991234567",
			Gender:       genders[i%3],
			Sex:          sexes[i%3],
			AgeRange:     ages[i%3],
		}
	}
	return records
}

func reportContext() models.ReportContext {
	return models.ReportContext{
		Date:       time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		Place:      "Sala 2",
		Start:      time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		End:        time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		Program:    "Seguridad Comunitaria",
		Unit:       "Delegación Norte",
		Notes:      "Sin novedades",
		Agreements: "Reunión mensual",
		Signatory:  "Jefe de Delegación",
	}
}

func scratchEngine(slots int) (*Engine, *models.Sheet) {
	layout := models.DefaultLayout(slots)
	return &Engine{
		Layout:  layout,
		Anchors: ScratchAnchors(layout),
		Header:  NewHeaderInjector("es"),
		Mapper:  NewMapper(layout.Columns),
		Workers: 4,
	}, BuildScratchSheet(DefaultSheetName, layout)
}

func paginate(e *Engine, base *models.Sheet, records []models.AttendanceRecord) (*models.Document, error) {
	return e.Paginate(context.Background(), base, records, reportContext())
}
