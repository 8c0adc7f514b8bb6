// Package reply renders lookup results and error outcomes into the bot's
// fixed zh-TW reply texts.
package reply

import (
	"fmt"
	"strconv"

	"stockbot/internal/health"
	"stockbot/internal/quote"
)

const (
	// QuoteUsage is the hint for a quote command missing its ticker.
	QuoteUsage = "請輸入正確格式，例如：報價 2330"
	// CheckupUsage is the hint for a checkup command missing its ticker.
	CheckupUsage = "請輸入正確格式，例如：健檢 2330"
	// CheckupUnavailable is sent when no checkup data could be retrieved.
	CheckupUnavailable = "無法獲取股票健康資料，請檢查股票代號是否正確。"
	// Help is the catch-all reply for unrecognized input.
	Help = "請輸入 'menu' 或 '選單' 來查看功能選單，\n" +
		"或輸入 '報價 股票代碼' / '查股 股票代碼' 來查詢股票資訊，\n" +
		"也可以直接輸入股票代號，例如：2330。"
)

// Quote renders the fixed four-line quote template. Absent fields render
// N/A verbatim.
func Quote(r quote.Result) string {
	return fmt.Sprintf("股票代碼：%s\n現價：%s\n前收價：%s\n市值：%s",
		r.Symbol,
		formatNumber(r.Price),
		orNA(r.PreviousClose, r.HasPrevious),
		orNA(r.MarketCap, r.HasMarketCap),
	)
}

// NotFound names the requested ticker and asks the user to verify it.
func NotFound(display string) string {
	return fmt.Sprintf("無法取得 %s 的資料，請確認代碼是否正確。", display)
}

// Checkup renders the stock-checkup block.
func Checkup(r health.Result) string {
	return fmt.Sprintf("股票代號 %s 的健康狀況：\n公司名稱：%s\n估值（前瞻市盈率）：%s\n風險評估（Beta）：%s",
		r.Symbol,
		r.Company,
		orNA(r.ForwardPE, r.HasPE),
		orNA(r.Beta, r.HasBeta),
	)
}

// formatNumber prints the shortest decimal form that round-trips at float32
// precision, which is what the provider delivers. Whole numbers print
// without a decimal point and nothing ever prints in exponent notation.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}

func orNA(v float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return formatNumber(v)
}
