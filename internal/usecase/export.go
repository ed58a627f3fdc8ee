package usecase

import (
	"io"
	"strconv"

	"aeron-recovery-service/internal/domain/entity"
	"aeron-recovery-service/pkg/utils"
)

// ExportHeaders are the columns of the affected-flights report
var ExportHeaders = []string{"Flight", "Route", "Departure", "Status", "Priority", "Passengers", "Impact"}

// ExportRows renders the header plus one row per record, in the given order
func ExportRows(records []*entity.FlightRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, ExportHeaders)
	for _, r := range records {
		status := string(r.Status)
		if r.HasDetail() {
			status += " " + *r.StatusDetail
		}
		rows = append(rows, []string{
			r.FlightNumber,
			r.Origin + " → " + r.Destination,
			r.DepartureTime + " " + r.DepartureDate,
			status,
			string(r.Priority),
			strconv.Itoa(r.Passengers),
			r.ImpactSeverity,
		})
	}
	return rows
}

// WriteExport writes the report as CSV with every field quoted
func WriteExport(w io.Writer, records []*entity.FlightRecord) error {
	return utils.WriteQuotedCSV(w, ExportRows(records))
}
