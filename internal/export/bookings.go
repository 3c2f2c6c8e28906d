// Package export renders booking reports as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Bookings"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var headers = []string{
	"ID", "Name", "Email", "Phone", "Vaccine", "Location",
	"Booking Date", "Status", "Doses", "Notes", "Created At",
}

// FileName is the attachment name for a report generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("bookings_export_%s.xlsx", t.Format("2006-01-02_15-04-05"))
}

// WriteBookings writes one row per booking below a bold header row.
func WriteBookings(w io.Writer, bookings []*domain.Booking, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, style)
	}

	for i, b := range bookings {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			b.ID,
			b.UserInfo.Name,
			b.UserInfo.Email,
			b.UserInfo.Phone,
			b.VaccineInfo.Name,
			b.VaccineInfo.Location,
			b.BookingDate.Format(dateLayout),
			string(b.Status),
			doseSummary(b.Doses),
			b.Notes,
			b.CreatedAt.Format(dateTimeLayout),
		}
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 38)
	_ = f.SetColWidth(SheetName, "B", "F", 22)
	_ = f.SetColWidth(SheetName, "G", "H", 14)
	_ = f.SetColWidth(SheetName, "I", "J", 40)
	_ = f.SetColWidth(SheetName, "K", "K", 18)

	if err = f.SetDocProps(&excelize.DocProperties{
		Title:   "Vaccine bookings",
		Created: generatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("set properties: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// doseSummary renders doses as "Dose 1 (2026-10-01, done); Dose 2 (2026-11-01)".
func doseSummary(doses []domain.Dose) string {
	parts := make([]string, 0, len(doses))
	for _, d := range doses {
		s := fmt.Sprintf("%s (%s", d.Label, d.ScheduledDate.Format(dateLayout))
		if d.Completed {
			s += ", done"
		}
		parts = append(parts, s+")")
	}
	return strings.Join(parts, "; ")
}
