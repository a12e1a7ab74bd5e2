package request

// DashboardQuery selects the dashboard window
type DashboardQuery struct {
	Range string `form:"range"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// ReportQuery represents report filters
type ReportQuery struct {
	From        string `form:"from"`
	To          string `form:"to"`
	PoojaName   string `form:"pooja_name"`
	Username    string `form:"username"`
	PaymentMode string `form:"payment_mode"`
}

// DateRangeQuery is an optional inclusive from/to pair
type DateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
