package request

type PaymentListQuery struct {
	StayID string `form:"stay_id" binding:"omitempty,uuid"`
}

type DepositListQuery struct {
	Status string `form:"status" binding:"omitempty,deposit_status"`
}

// MonthlyReportQuery defaults to the current hotel month when either part is
// missing.
type MonthlyReportQuery struct {
	Year  *int `form:"year" binding:"omitempty,min=2000,max=9999"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
}
