// Package export renders karte data as spreadsheets for offline use.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-karte/internal/models"
)

const (
	MeasurementSheet = "体重推移"
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var measurementHeader = []any{"測定日", "体重 (kg)", "顧客"}

// WriteMeasurements writes one sheet listing ms in the given order. Dates
// are rendered in loc.
func WriteMeasurements(w io.Writer, ms []models.Measurement, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), MeasurementSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(MeasurementSheet, "A1", &measurementHeader); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for i, m := range ms {
		client := ""
		if m.Client != nil {
			client = m.Client.Name
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{m.MeasuredAt.In(loc).Format("2006-01-02"), m.Value, client}
		if err := f.SetSheetRow(MeasurementSheet, cell, &row); err != nil {
			return fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(MeasurementSheet, "A", "C", 16); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
