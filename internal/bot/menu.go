package bot

import "github.com/line/line-bot-sdk-go/v7/linebot"

// menuMessage builds the static feature menu. The carousel is a fixed data
// literal sent unmodified, independent of provider state.
func menuMessage() linebot.SendingMessage {
	return linebot.NewTemplateMessage("選單", linebot.NewCarouselTemplate(
		linebot.NewCarouselColumn(
			"https://example.com/stock.png",
			"股票 Stock",
			"查看股票價格",
			linebot.NewURIAction("查看", "https://yourwebsite.com/stock"),
		),
		linebot.NewCarouselColumn(
			"https://example.com/finance-tips.png",
			"理財技巧 Finance tips",
			"獲取理財建議",
			linebot.NewURIAction("獲取", "https://yourwebsite.com/finance-tips"),
		),
		linebot.NewCarouselColumn(
			"https://example.com/rate-inquiry.png",
			"匯率查詢 Rate inquiry",
			"查詢今日匯率",
			linebot.NewURIAction("查詢", "https://yourwebsite.com/rate-inquiry"),
		),
		linebot.NewCarouselColumn(
			"https://example.com/stock-checkup.png",
			"股票健康檢查 Stock checkup",
			"查看股票健康狀況",
			linebot.NewURIAction("檢查", "https://yourwebsite.com/stock-checkup"),
		),
		linebot.NewCarouselColumn(
			"https://example.com/video.png",
			"影片 Video",
			"觀看金融相關影片",
			linebot.NewURIAction("觀看", "https://yourwebsite.com/video"),
		),
		linebot.NewCarouselColumn(
			"https://example.com/finance-website.png",
			"理財網站 Finance website",
			"訪問理財網站",
			linebot.NewURIAction("訪問", "https://yourwebsite.com/finance-website"),
		),
	))
}
