package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GuestView struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	NationalID string    `json:"national_id"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RoomView struct {
	ID          uuid.UUID       `json:"id"`
	RoomNumber  string          `json:"room_number"`
	BedType     string          `json:"bed_type"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StayView joins a stay with its guest, room and deposit state.
type StayView struct {
	ID          uuid.UUID  `json:"id"`
	GuestID     uuid.UUID  `json:"guest_id"`
	RoomID      uuid.UUID  `json:"room_id"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	PlannedDays int        `json:"planned_days"`
	Status      string     `json:"status"`

	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	NationalID string  `json:"national_id"`
	Phone      *string `json:"phone,omitempty"`

	RoomNumber  string          `json:"room_number"`
	BedType     string          `json:"bed_type"`
	PricePerDay decimal.Decimal `json:"price_per_day"`

	DepositStatus *string `json:"deposit_status,omitempty"`

	// Set for stays that are still checked in.
	ExpectedCheckout *time.Time `json:"expected_checkout,omitempty"`
}

type PaymentView struct {
	ID          uuid.UUID       `json:"id"`
	StayID      uuid.UUID       `json:"stay_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"payment_type"`
	Method      string          `json:"method"`
	PaidAt      time.Time       `json:"paid_at"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	RoomNumber  string          `json:"room_number"`
}

type DepositView struct {
	ID         uuid.UUID       `json:"id"`
	StayID     uuid.UUID       `json:"stay_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	PaidAt     time.Time       `json:"paid_at"`
	ReturnedAt *time.Time      `json:"returned_at,omitempty"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	RoomNumber string          `json:"room_number"`
}

// Period is a half-open [Start, End) interval on the hotel calendar.
type Period struct {
	Start time.Time
	End   time.Time
	// Location name used to bucket timestamps into hotel-local days.
	TimeZone string
}

type StayTotals struct {
	TotalGuests int64 `json:"total_guests"`
	TotalStays  int64 `json:"total_stays"`
	RoomsUsed   int64 `json:"rooms_used"`
}

type RevenueLine struct {
	PaymentType string          `json:"payment_type"`
	Total       decimal.Decimal `json:"total"`
}

type DailyLine struct {
	Date     string          `json:"date"`
	CheckIns int64           `json:"check_ins"`
	Guests   int64           `json:"guests"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type BedTypeLine struct {
	BedType string          `json:"bed_type"`
	Stays   int64           `json:"stays"`
	Revenue decimal.Decimal `json:"revenue"`
}

type MonthlySummary struct {
	StayTotals
	RevenueByType   []RevenueLine   `json:"revenue_by_type"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	DepositRetained decimal.Decimal `json:"deposit_retained"`
}

type MonthlyReport struct {
	Year    int            `json:"year"`
	Month   int            `json:"month"`
	Summary MonthlySummary `json:"summary"`
	Daily   []DailyLine    `json:"daily"`
	BedType []BedTypeLine  `json:"bed_type"`
}

type RoomCounts struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
	Cleaning  int64 `json:"cleaning"`
}

type Dashboard struct {
	Rooms          RoomCounts      `json:"rooms"`
	TodayCheckIns  int64           `json:"today_check_ins"`
	TodayCheckOuts int64           `json:"today_check_outs"`
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	ActiveStays    int64           `json:"active_stays"`
}
