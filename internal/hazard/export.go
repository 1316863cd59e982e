package hazard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Export writes the report to path; the format follows the extension
// (.xlsx or .pdf).
func Export(rep *Report, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ExportXLSX(rep, path)
	case ".pdf":
		return ExportPDF(rep, path)
	default:
		return fmt.Errorf("unsupported report format %q (use .xlsx or .pdf)", filepath.Ext(path))
	}
}

const sheetName = "Hazard"

var reportColumns = []string{"Station", "Water Level (m)", "Status", "Excess (m)", "Recommendation"}

// ExportXLSX writes the report as a single-sheet workbook.
func ExportXLSX(rep *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for i, h := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reportColumns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, bold); err != nil {
		return err
	}

	for r, row := range rep.Rows {
		values := []interface{}{row.Station, row.Level, string(row.Status), row.Excess, row.Advice.Recommendation}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	summaryRow := len(rep.Rows) + 3
	cell, _ := excelize.CoordinatesToCellName(1, summaryRow)
	if err := f.SetCellValue(sheetName, cell, "Threshold (m)"); err != nil {
		return err
	}
	cell, _ = excelize.CoordinatesToCellName(2, summaryRow)
	if err := f.SetCellValue(sheetName, cell, rep.Threshold); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// ExportPDF writes the report as a one-page A4 table.
func ExportPDF(rep *Report, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Flood Hazard Analysis")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Threshold: %.2f m", rep.Threshold))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{45, 35, 30, 30}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range reportColumns[:len(widths)] {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rep.Rows {
		pdf.CellFormat(widths[0], 6, row.Station, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.2f", row.Level), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, string(row.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%+.2f", row.Excess), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if breaches := rep.Breaches(); len(breaches) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Engineering Recommendations")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range breaches {
			pdf.MultiCell(0, 5, fmt.Sprintf("%s - %s", row.Station, row.Advice), "", "L", false)
			pdf.Ln(1)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
