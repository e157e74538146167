package placeholder

import (
	"fmt"
	"strings"

	"github.com/givebridge/sharepage/internal/model"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Percentage returns raised/goal as a whole-number percentage, rounded to the
// nearest integer. A non-positive goal yields 0. The raw value is not capped;
// over-funded campaigns report more than 100.
func Percentage(raised, goal decimal.Decimal) int64 {
	if !goal.IsPositive() {
		return 0
	}
	return raised.Div(goal).Mul(oneHundred).Round(0).IntPart()
}

// FormatAmount renders a money amount with space-separated thousands groups,
// dropping any fractional part for display.
func FormatAmount(d decimal.Decimal) string {
	str := d.Round(0).String()
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}

	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(' ')
		}
		result.WriteRune(c)
	}
	if neg {
		return "-" + result.String()
	}
	return result.String()
}

// RenderCampaigns converts campaign summaries into a self-contained HTML
// fragment: one card per campaign, styled entirely inline so the fragment
// renders correctly regardless of the author's CSS. Campaigns appear in the
// order supplied; filtering and sorting are the caller's job.
//
// An empty list yields a centered "no active campaigns" paragraph, never an
// empty string.
func RenderCampaigns(campaigns []model.CampaignSummary) string {
	if len(campaigns) == 0 {
		return `<p style="text-align:center;color:#888;font-family:sans-serif;padding:24px 0;">No active campaigns at the moment.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div style="display:flex;flex-wrap:wrap;gap:16px;justify-content:center;">`)
	for _, c := range campaigns {
		writeCampaignCard(&b, c)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func writeCampaignCard(b *strings.Builder, c model.CampaignSummary) {
	pct := Percentage(c.Raised, c.Goal)
	// The progress bar width is visually capped; the printed number is not.
	barWidth := pct
	if barWidth > 100 {
		barWidth = 100
	}
	if barWidth < 0 {
		barWidth = 0
	}

	b.WriteString(`<div style="width:280px;border:1px solid #e0e0e0;border-radius:8px;overflow:hidden;font-family:sans-serif;background:#fff;">`)
	if c.ImageURL != "" {
		fmt.Fprintf(b, `<img src="%s" alt="%s" style="width:100%%;height:150px;object-fit:cover;display:block;">`, c.ImageURL, c.Title)
	}
	b.WriteString(`<div style="padding:12px;">`)
	fmt.Fprintf(b, `<h3 style="margin:0 0 4px;font-size:16px;color:#222;">%s</h3>`, c.Title)
	fmt.Fprintf(b, `<p style="margin:0 0 8px;font-size:12px;color:#777;">by %s</p>`, c.Organizer)
	fmt.Fprintf(b, `<div style="background:#eee;border-radius:4px;height:8px;overflow:hidden;"><div style="background:#2e7d32;height:8px;width:%d%%;"></div></div>`, barWidth)
	fmt.Fprintf(b, `<p style="margin:8px 0 0;font-size:13px;color:#333;">&#8377;%s raised of &#8377;%s (%d%%)</p>`, FormatAmount(c.Raised), FormatAmount(c.Goal), pct)
	b.WriteString(`</div></div>`)
}
