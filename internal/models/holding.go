package models

// Holding is a stored position: share count and average cost per share.
// This is the persisted shape, keyed by symbol.
type Holding struct {
	Shares      float64 `json:"shares"`
	CostAverage float64 `json:"cost_average"`
}

// HoldingMap maps upper-case symbols to holdings.
type HoldingMap map[string]Holding

// HoldingView is a holding joined with its latest quote, ready for
// display. Price-derived fields are zero when no quote is available.
type HoldingView struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Shares        float64 `json:"shares"`
	CostAverage   float64 `json:"cost_average"`
	Price         float64 `json:"price"`
	Value         float64 `json:"value"`
	PL            float64 `json:"pl"`
	PLPercent     float64 `json:"pl_percent"`
	ChangePercent float64 `json:"change_percent"`
}

// Portfolio is the reconciled view of all holdings plus totals.
type Portfolio struct {
	Holdings           []HoldingView `json:"holdings"`
	TotalValue         float64       `json:"total_value"`
	DailyChange        float64       `json:"daily_change"`
	DailyChangePercent float64       `json:"daily_change_percent"`
	TotalCost          float64       `json:"total_cost"`
	TotalPL            float64       `json:"total_pl"`
	TotalPLPercent     float64       `json:"total_pl_percent"`
}
