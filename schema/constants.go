package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ViewKind represents one of the analysis views.
	ViewKind string

	// TrendDirection represents the direction of a price trend.
	TrendDirection string

	// DatabaseBackend represents the database backend for result storage.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All analysis views supported.
const (
	SummaryKind ViewKind = "summary"
	PriceKind   ViewKind = "price"
	RouteKind   ViewKind = "route"
	TimeKind    ViewKind = "time"
	DemandKind  ViewKind = "demand"
	AirlineKind ViewKind = "airline"
)

// All trend directions supported.
const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Date and clock layouts emitted across the pipeline.
const (
	DateKeyFormat = "2006-01-02" // canonical day key, also the primary input layout
	ClockFormat   = "15:04"      // departure time layout
)

// AirlineNoDataNote marks an airline analysis computed from records
// that carried no airline field at all.
const AirlineNoDataNote = "no airline data available"

// AllViewKinds returns a list of all supported analysis views.
var AllViewKinds = []ViewKind{SummaryKind, PriceKind, RouteKind, TimeKind, DemandKind, AirlineKind}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidViewKinds lists all valid analysis views.
var ValidViewKinds = map[ViewKind]struct{}{
	SummaryKind: {},
	PriceKind:   {},
	RouteKind:   {},
	TimeKind:    {},
	DemandKind:  {},
	AirlineKind: {},
}

// ValidDatabaseBackends lists all valid storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// WeekdayOrder lists day labels from Monday to Sunday for stable display.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MonthOrder lists month labels from January to December for stable display.
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
