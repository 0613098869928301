package schema

// CheckResult holds the results of a data quality check.
type CheckResult struct {
	Passed        bool
	TotalRecords  int
	KeptRecords   int
	DroppedTotal  int
	DropRatio     float64
	DropsByReason map[DropReason]int
	MinRecords    int     // Threshold the kept count was checked against
	MaxDropRatio  float64 // Threshold the drop ratio was checked against
	Failures      []CheckFailure
}

// CheckFailure represents a single violated quality threshold.
type CheckFailure struct {
	Rule      string
	Observed  float64
	Threshold float64
}

// DropReason classifies why a raw record was discarded during cleaning.
type DropReason string

// All drop reasons recorded during cleaning.
const (
	DropDuplicate DropReason = "duplicate"
	DropBadPrice  DropReason = "bad_price"
	DropBadDate   DropReason = "bad_date"
)

// CleanReport accounts for every raw record that went into a cleaning pass.
type CleanReport struct {
	TotalRecords  int                `json:"total_records"`
	KeptRecords   int                `json:"kept_records"`
	DropsByReason map[DropReason]int `json:"drops_by_reason"`
}

// DroppedTotal returns the number of records discarded during cleaning.
func (r CleanReport) DroppedTotal() int {
	total := 0
	for _, n := range r.DropsByReason {
		total += n
	}
	return total
}

// DropRatio returns the fraction of records discarded, zero for empty input.
func (r CleanReport) DropRatio() float64 {
	if r.TotalRecords == 0 {
		return 0
	}
	return float64(r.DroppedTotal()) / float64(r.TotalRecords)
}
