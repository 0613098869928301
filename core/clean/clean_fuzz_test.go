package clean

import (
	"strings"
	"testing"

	"github.com/farescope/farescope/schema"
)

// FuzzNormalizeRecord fuzzes the cleaning pass with arbitrary raw field values.
func FuzzNormalizeRecord(f *testing.F) {
	f.Add("150", "syd", "mel", "2024-01-01", "08:30")
	f.Add("not-a-number", "SYD", "MEL", "2024-01-02", "")
	f.Add("-95.5", "", "bne", "02/01/2024", "25:99")
	f.Add("0", "per", "adl", "garbage", "8:05")

	f.Fuzz(func(t *testing.T, price, origin, destination, date, clock string) {
		records := []schema.RawRecord{
			{Price: price, Origin: origin, Destination: destination, Date: date, Time: clock},
		}

		flights, report := Normalize(records)

		if len(flights)+report.DroppedTotal() != report.TotalRecords {
			t.Errorf("accounting mismatch: kept %d, dropped %d, total %d",
				len(flights), report.DroppedTotal(), report.TotalRecords)
		}

		for _, flight := range flights {
			if flight.Price <= 0 {
				t.Errorf("kept flight with non-positive price %v", flight.Price)
			}
			if flight.Date.IsZero() {
				t.Error("kept flight with zero date")
			}
			if flight.DayOfWeek == "" || flight.Month == "" {
				t.Error("kept flight missing derived calendar fields")
			}
			if flight.Origin != "" && flight.Destination != "" {
				want := flight.Origin + "-" + flight.Destination
				if flight.Route != want {
					t.Errorf("route %q does not match %q", flight.Route, want)
				}
			} else if flight.Route != "" {
				t.Errorf("route %q present despite missing code", flight.Route)
			}
			if flight.Origin != strings.ToUpper(flight.Origin) {
				t.Errorf("origin %q not uppercased", flight.Origin)
			}
		}
	})
}
