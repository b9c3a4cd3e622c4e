package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/foliohq/folio-portal/internal/common"
	"github.com/foliohq/folio-portal/internal/models"
)

// TrendClass maps a delta to its styling class. The boundary at exactly
// zero is bullish.
func TrendClass(delta float64) string {
	if delta >= 0 {
		return "bullish"
	}
	return "bearish"
}

// SentimentBadge renders the badge for a sentiment category. Unknown or
// missing sentiment defaults to neutral.
func SentimentBadge(sentiment string) string {
	switch strings.ToLower(sentiment) {
	case "bullish":
		return `<span class="badge bullish">&#9650; Bullish</span>`
	case "bearish":
		return `<span class="badge bearish">&#9660; Bearish</span>`
	default:
		return `<span class="badge neutral">&#9679; Neutral</span>`
	}
}

// ErrorPanel renders the muted placeholder shown when a panel's data
// could not be fetched or parsed.
func ErrorPanel(label string) string {
	return fmt.Sprintf(`<div class="panel-error">%s could not load</div>`, html.EscapeString(label))
}

// SummaryBar renders the portfolio totals strip.
func SummaryBar(p *models.Portfolio) string {
	var b strings.Builder
	b.WriteString(`<div class="summary-bar">`)
	fmt.Fprintf(&b, `<div class="summary-item"><span class="label">Total Value</span><span class="value">%s</span></div>`,
		common.FormatMoney(p.TotalValue))
	fmt.Fprintf(&b, `<div class="summary-item %s"><span class="label">Daily Change</span><span class="value">%s (%s)</span></div>`,
		TrendClass(p.DailyChange), common.FormatSignedMoney(p.DailyChange), common.FormatSignedPct(p.DailyChangePercent))
	fmt.Fprintf(&b, `<div class="summary-item %s"><span class="label">Total P/L</span><span class="value">%s (%s)</span></div>`,
		TrendClass(p.TotalPL), common.FormatSignedMoney(p.TotalPL), common.FormatSignedPct(p.TotalPLPercent))
	b.WriteString(`</div>`)
	return b.String()
}

// HoldingsGrid renders the holdings cards. A holding shows P/L only when
// it has a cost basis; otherwise the card carries a placeholder.
func HoldingsGrid(p *models.Portfolio, selected string) string {
	if len(p.Holdings) == 0 {
		return `<div class="holdings-empty">No holdings yet. Add a symbol to get started.</div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="holdings-grid">`)
	for _, v := range p.Holdings {
		cardClass := "holding-card"
		if v.Symbol == selected {
			cardClass += " selected"
		}
		fmt.Fprintf(&b, `<div class="%s" data-symbol="%s">`, cardClass, html.EscapeString(v.Symbol))
		fmt.Fprintf(&b, `<div class="holding-head"><span class="symbol">%s</span><span class="name">%s</span></div>`,
			html.EscapeString(v.Symbol), html.EscapeString(v.Name))
		fmt.Fprintf(&b, `<div class="holding-price %s">%s <span class="delta">%s</span></div>`,
			TrendClass(v.ChangePercent), common.FormatMoney(v.Price), common.FormatSignedPct(v.ChangePercent))
		fmt.Fprintf(&b, `<div class="holding-position">%g shares &middot; %s</div>`,
			v.Shares, common.FormatMoney(v.Value))
		if v.CostAverage > 0 {
			fmt.Fprintf(&b, `<div class="holding-pl %s">%s (%s)</div>`,
				TrendClass(v.PL), common.FormatSignedMoney(v.PL), common.FormatSignedPct(v.PLPercent))
		} else {
			b.WriteString(`<div class="holding-pl muted">no cost basis</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// SectorCards renders the sector snapshot. The first 3 entries in rank
// order are flagged top-gainer only when their change is non-negative.
func SectorCards(s *models.SectorSnapshot) string {
	var b strings.Builder
	b.WriteString(`<div class="sector-grid">`)
	for i, sector := range s.Sectors {
		classes := "sector-card " + TrendClass(sector.ChangePercent)
		if i < 3 && sector.ChangePercent >= 0 {
			classes += " top-gainer"
		}
		fmt.Fprintf(&b, `<div class="%s">`, classes)
		fmt.Fprintf(&b, `<span class="name">%s</span>`, html.EscapeString(sector.Name))
		fmt.Fprintf(&b, `<span class="delta">%s</span>`, common.FormatSignedPct(sector.ChangePercent))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	if len(s.TopGainers) > 0 || len(s.TopLosers) > 0 {
		b.WriteString(`<div class="sector-movers">`)
		writeMovers(&b, "Top Gainers", s.TopGainers)
		writeMovers(&b, "Top Losers", s.TopLosers)
		b.WriteString(`</div>`)
	}
	return b.String()
}

func writeMovers(b *strings.Builder, title string, quotes []models.Quote) {
	if len(quotes) == 0 {
		return
	}
	fmt.Fprintf(b, `<div class="movers"><h4>%s</h4><ul>`, title)
	for _, q := range quotes {
		fmt.Fprintf(b, `<li class="%s"><span class="symbol">%s</span> %s <span class="delta">%s</span></li>`,
			TrendClass(q.ChangePercent), html.EscapeString(q.Symbol), common.FormatMoney(q.Price), common.FormatSignedPct(q.ChangePercent))
	}
	b.WriteString(`</ul></div>`)
}

// NewsList renders a symbol's headlines with sentiment badges.
func NewsList(n *models.SymbolNews) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="news-panel" data-symbol="%s">`, html.EscapeString(n.Symbol))
	fmt.Fprintf(&b, `<div class="news-head"><span class="symbol">%s</span>%s</div>`,
		html.EscapeString(n.Symbol), SentimentBadge(n.OverallSentiment))

	if len(n.News) == 0 {
		b.WriteString(`<div class="news-empty">No recent headlines.</div>`)
	} else {
		b.WriteString(`<ul class="news-list">`)
		for _, a := range n.News {
			b.WriteString(`<li class="news-item">`)
			fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener">%s</a>`,
				html.EscapeString(a.URL), html.EscapeString(a.Title))
			fmt.Fprintf(&b, `<div class="news-meta">%s &middot; %s %s</div>`,
				html.EscapeString(a.Source), html.EscapeString(a.PublishedAt), SentimentBadge(a.Sentiment))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// FeedList renders the general market headline feed.
func FeedList(f *models.MarketFeed) string {
	if len(f.Articles) == 0 {
		return `<div class="feed-empty">No market headlines right now.</div>`
	}

	var b strings.Builder
	b.WriteString(`<ul class="feed-list">`)
	for _, a := range f.Articles {
		b.WriteString(`<li class="feed-item">`)
		fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener">%s</a>`,
			html.EscapeString(a.URL), html.EscapeString(a.Title))
		fmt.Fprintf(&b, `<div class="feed-meta">%s &middot; %s</div>`,
			html.EscapeString(a.Source), html.EscapeString(a.PublishedAt))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// AnalysisPanel renders a generated narrative with markdown-lite markup.
func AnalysisPanel(a *models.Analysis) string {
	var b strings.Builder
	b.WriteString(`<div class="analysis-panel">`)
	b.WriteString(MarkdownLite(a.Summary))
	if a.GeneratedAt != "" {
		fmt.Fprintf(&b, `<div class="analysis-meta">Generated %s</div>`, html.EscapeString(a.GeneratedAt))
	}
	b.WriteString(`</div>`)
	return b.String()
}
