package portfolio

import (
	"sort"

	"github.com/foliohq/folio-portal/internal/models"
)

// Reconcile joins stored holdings with a price snapshot into a display
// portfolio. It is a pure function: missing price data zeroes the
// price-derived fields for that symbol and never fails the batch.
// Views are sorted by symbol for stable rendering.
func Reconcile(holdings models.HoldingMap, prices models.PriceMap) models.Portfolio {
	symbols := make([]string, 0, len(holdings))
	for symbol := range holdings {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	portfolio := models.Portfolio{
		Holdings: make([]models.HoldingView, 0, len(symbols)),
	}

	for _, symbol := range symbols {
		holding := holdings[symbol]
		view := models.HoldingView{
			Symbol:      symbol,
			Shares:      holding.Shares,
			CostAverage: holding.CostAverage,
		}

		if entry, ok := prices[symbol]; ok {
			view.Name = entry.Name
			view.Price = entry.Price
			view.ChangePercent = entry.ChangePercent
			view.Value = entry.Price * holding.Shares

			costBasis := holding.CostAverage * holding.Shares
			if costBasis > 0 {
				view.PL = view.Value - costBasis
				view.PLPercent = view.PL / costBasis * 100
			}
		}

		portfolio.TotalValue += view.Value
		portfolio.TotalCost += holding.CostAverage * holding.Shares
		portfolio.TotalPL += view.PL
		portfolio.DailyChange += view.ChangePercent / 100 * view.Value
		portfolio.Holdings = append(portfolio.Holdings, view)
	}

	if portfolio.TotalCost > 0 {
		portfolio.TotalPLPercent = portfolio.TotalPL / portfolio.TotalCost * 100
	}
	if base := portfolio.TotalValue - portfolio.DailyChange; base > 0 {
		portfolio.DailyChangePercent = portfolio.DailyChange / base * 100
	}

	return portfolio
}
