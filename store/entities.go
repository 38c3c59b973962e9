package store

import "time"

// Customer lifecycle states.
const (
	StatusActive  = "active"
	StatusChurned = "churned"
)

// Defaults applied when an optional record field is left empty.
const (
	DefaultStage      = "seed"
	DefaultPlan       = "monthly"
	DefaultDepartment = "general"
)

// Startup is the root entity every business record hangs off.
type Startup struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	FoundedDate string    `json:"founded_date,omitempty"`
	Stage       string    `gorm:"not null" json:"stage"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// Customer is a paying customer of a startup. Customers are never deleted:
// a lost customer is marked churned and keeps contributing to historical
// cohorts.
type Customer struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	StartupID string     `gorm:"not null;index:idx_customers_startup" json:"startup_id"`
	Name      string     `gorm:"not null" json:"name"`
	Plan      string     `gorm:"not null" json:"plan"`
	MRR       float64    `gorm:"not null" json:"mrr"`
	Status    string     `gorm:"not null" json:"status"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	ChurnedAt *time.Time `json:"churned_at,omitempty"`
	Notes     string     `json:"notes,omitempty"`

	// Relations
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE" json:"-"`
}

// Employee is a member of staff. Departures are recorded by setting LeftAt,
// never by deleting the row.
type Employee struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	StartupID  string     `gorm:"not null" json:"startup_id"`
	Name       string     `gorm:"not null" json:"name"`
	Role       string     `gorm:"not null" json:"role"`
	Department string     `gorm:"not null" json:"department"`
	Salary     float64    `gorm:"not null" json:"salary"`
	HiredAt    time.Time  `gorm:"not null" json:"hired_at"`
	LeftAt     *time.Time `json:"left_at,omitempty"`

	// Relations
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE" json:"-"`
}

// FundingRound is a closed financing round.
type FundingRound struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	StartupID string    `gorm:"not null" json:"startup_id"`
	RoundName string    `gorm:"not null" json:"round_name"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Valuation *float64  `json:"valuation,omitempty"`
	Investors []string  `gorm:"serializer:json" json:"investors,omitempty"`
	ClosedAt  time.Time `gorm:"not null" json:"closed_at"`
	Notes     string    `json:"notes,omitempty"`

	// Relations
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE" json:"-"`
}

// Metric is a raw KPI point recorded for a startup and a month.
type Metric struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	StartupID  string    `gorm:"not null;index:idx_metrics_startup;index:idx_metrics_type,priority:1" json:"startup_id"`
	MetricType string    `gorm:"not null;index:idx_metrics_type,priority:2" json:"metric_type"`
	Value      float64   `gorm:"not null" json:"value"`
	Period     string    `gorm:"not null" json:"period"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
	Notes      string    `json:"notes,omitempty"`

	// Relations
	Startup Startup `gorm:"foreignKey:StartupID;constraint:OnDelete:CASCADE" json:"-"`
}
