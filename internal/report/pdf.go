package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Row is one (booking, service) line of the report. A booking with three
// line items contributes three rows.
type Row struct {
	Date          time.Time
	UserName      string
	UserEmail     string
	UserPhone     string
	SalonName     string
	SalonLocation string
	SalonPhone    string
	ServiceName   string
	ServicePrice  float64
}

var (
	headers = []string{
		"Date",
		"User Name",
		"User Email",
		"User Phone",
		"Salon Name",
		"Salon Location",
		"Salon Phone",
		"Service Name",
		"Service Price",
	}

	// Column widths in mm, fitted to landscape A4 inside 10mm margins.
	colWidths = []float64{30, 30, 40, 27, 30, 38, 27, 38, 17}
)

// BookingsPDF renders the bookings table as a landscape A4 PDF.
func BookingsPDF(title string, rows []Row) ([]byte, error) {
	if title == "" {
		title = "Booking Details"
	}

	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetMargins(10, 10, 10)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, title)
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(255, 220, 220)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		cells := []string{
			r.Date.Format("2006-01-02 15:04"),
			r.UserName,
			r.UserEmail,
			r.UserPhone,
			r.SalonName,
			r.SalonLocation,
			r.SalonPhone,
			r.ServiceName,
			fmt.Sprintf("$%.2f", r.ServicePrice),
		}
		for i, cell := range cells {
			doc.CellFormat(colWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
