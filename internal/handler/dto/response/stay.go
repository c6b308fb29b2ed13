package response

import (
	"time"

	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type StayResponse struct {
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

	DepositStatus    *string    `json:"deposit_status,omitempty"`
	ExpectedCheckout *time.Time `json:"expected_checkout,omitempty"`
}

type CheckInResponse struct {
	Stay       *StayResponse   `json:"stay"`
	RoomCharge decimal.Decimal `json:"room_charge"`
	Deposit    decimal.Decimal `json:"deposit"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

type CheckOutResponse struct {
	Message               string          `json:"message"`
	StayID                uuid.UUID       `json:"stay_id"`
	RoomNumber            string          `json:"room_number"`
	CheckIn               time.Time       `json:"check_in"`
	CheckOut              time.Time       `json:"check_out"`
	ExpectedCheckout      time.Time       `json:"expected_checkout"`
	ExtraDays             int             `json:"extra_days"`
	LateFee               decimal.Decimal `json:"late_fee"`
	DepositReturned       bool            `json:"deposit_returned"`
	TotalAdditionalCharge decimal.Decimal `json:"total_additional_charge"`
}

func FromStayView(v *queries.StayView) (*StayResponse, error) {
	var res StayResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "copy stay view")
	}
	return &res, nil
}

func FromStayViews(vs []*queries.StayView) ([]*StayResponse, error) {
	res := make([]*StayResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "copy stay views")
	}
	return res, nil
}

// FromCheckIn prefers the joined view; a nil view falls back to what the
// check-in transaction itself returned, without the guest fields.
func FromCheckIn(r *commands.CheckInResult, v *queries.StayView) (*CheckInResponse, error) {
	var stay *StayResponse
	if v != nil {
		var err error
		if stay, err = FromStayView(v); err != nil {
			return nil, err
		}
	} else {
		stay = stayFromCheckIn(r)
	}
	return &CheckInResponse{
		Stay:       stay,
		RoomCharge: r.RoomCharge,
		Deposit:    r.Deposit.Amount(),
		TotalPaid:  r.TotalPaid,
	}, nil
}

func FromCheckOut(r *commands.CheckOutResult) (*CheckOutResponse, error) {
	res := CheckOutResponse{Message: "Check-out successful"}
	if err := copier.Copy(&res, r); err != nil {
		return nil, errs.Wrap(err, "copy check-out result")
	}
	return &res, nil
}

func stayFromCheckIn(r *commands.CheckInResult) *StayResponse {
	res := &StayResponse{
		ID:          r.Stay.ID(),
		GuestID:     r.Stay.GuestID(),
		RoomID:      r.Stay.RoomID(),
		CheckIn:     r.Stay.CheckIn(),
		PlannedDays: r.Stay.PlannedDays().Int(),
		Status:      r.Stay.Status().String(),
	}
	if r.Room != nil {
		res.RoomNumber = r.Room.Number()
		res.BedType = r.Room.BedType().String()
		res.PricePerDay = r.Room.DailyRate()
	}
	if r.Deposit != nil {
		status := r.Deposit.Status().String()
		res.DepositStatus = &status
	}
	return res
}
