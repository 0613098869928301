package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintIdenticalRecords(t *testing.T) {
	direct := true
	duration := 120
	demand := 0.75

	a := RawRecord{
		Price:       150.0,
		Origin:      "syd",
		Destination: "mel",
		Date:        "2024-01-01",
		Time:        "08:30",
		Airline:     "Qantas",
		Direct:      &direct,
		Duration:    &duration,
		DemandScore: &demand,
		Source:      "sample",
	}

	directB := true
	durationB := 120
	demandB := 0.75
	b := RawRecord{
		Price:       150.0,
		Origin:      "syd",
		Destination: "mel",
		Date:        "2024-01-01",
		Time:        "08:30",
		Airline:     "Qantas",
		Direct:      &directB,
		Duration:    &durationB,
		DemandScore: &demandB,
		Source:      "sample",
	}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDistinctions(t *testing.T) {
	falseVal := false
	zeroDemand := 0.0

	tests := []struct {
		name string
		a    RawRecord
		b    RawRecord
	}{
		{
			name: "numeric vs string price",
			a:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
			b:    RawRecord{Price: "150", Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
		},
		{
			name: "different casing",
			a:    RawRecord{Price: 150.0, Origin: "syd", Destination: "mel", Date: "2024-01-01"},
			b:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
		},
		{
			name: "different date",
			a:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
			b:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-02"},
		},
		{
			name: "absent vs false direct",
			a:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
			b:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01", Direct: &falseVal},
		},
		{
			name: "absent vs zero demand",
			a:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01"},
			b:    RawRecord{Price: 150.0, Origin: "SYD", Destination: "MEL", Date: "2024-01-01", DemandScore: &zeroDemand},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.a.Fingerprint(), tt.b.Fingerprint())
		})
	}
}

func TestFlightDateKey(t *testing.T) {
	f := Flight{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-01-06", f.DateKey())
}
