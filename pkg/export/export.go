// Package export renders medical records for download.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Record is a medical record flattened for output
type Record struct {
	Date        string // YYYY-MM-DD
	PatientName string
	DoctorName  string
	Specialty   string
	Diagnosis   string
	Treatment   string
	Notes       string
	Vitals      []Vital
}

// Vital is one labelled reading; Number is set when the reading is numeric
type Vital struct {
	Name   string
	Text   string
	Number *float64
}

func (v Vital) String() string {
	if v.Number != nil && v.Text == "" {
		return fmt.Sprintf("%g", *v.Number)
	}
	return v.Text
}

// LongDate formats YYYY-MM-DD as "January 2, 2006". Unparseable input is returned as is.
func LongDate(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// TextFilename is the download name of a single record
func TextFilename(r Record) string {
	return "medical-record-" + r.Date + ".txt"
}

// RenderText lays a record out as a plain-text document
func RenderText(r Record, generatedAt time.Time) []byte {
	var b strings.Builder

	b.WriteString("MEDICAL RECORD\n")
	b.WriteString("==============\n\n")
	fmt.Fprintf(&b, "Patient: %s\n", r.PatientName)
	fmt.Fprintf(&b, "Doctor: %s\n", r.DoctorName)
	fmt.Fprintf(&b, "Date: %s\n\n", LongDate(r.Date))
	fmt.Fprintf(&b, "DIAGNOSIS:\n%s\n\n", r.Diagnosis)
	fmt.Fprintf(&b, "TREATMENT:\n%s\n\n", r.Treatment)
	fmt.Fprintf(&b, "NOTES:\n%s\n\n", r.Notes)

	if len(r.Vitals) > 0 {
		b.WriteString("VITALS:\n")
		for _, v := range r.Vitals {
			fmt.Fprintf(&b, "%s: %s\n", v.Name, v.String())
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generated on: %s", generatedAt.Format("January 2, 2006 15:04:05 MST"))
	return []byte(b.String())
}

const workbookSheet = "Medical Records"

var workbookHeaders = []string{"Date", "Doctor", "Specialty", "Diagnosis", "Treatment", "Notes"}

// Workbook renders records as an XLSX file, one row per record. Each distinct
// vital gets its own column after the fixed ones, in order of first appearance.
func Workbook(records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(workbookSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	vitalColumns := make(map[string]int)
	headers := append([]string(nil), workbookHeaders...)
	for _, r := range records {
		for _, v := range r.Vitals {
			if _, ok := vitalColumns[v.Name]; !ok {
				headers = append(headers, v.Name)
				vitalColumns[v.Name] = len(headers)
			}
		}
	}

	for col, header := range headers {
		if err := setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(workbookSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{r.Date, r.DoctorName, r.Specialty, r.Diagnosis, r.Treatment, r.Notes}
		for col, value := range values {
			if err := setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
		for _, v := range r.Vitals {
			var value interface{} = v.Text
			if v.Number != nil {
				value = *v.Number
			}
			if err := setCell(f, vitalColumns[v.Name], row, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(workbookSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(workbookSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
