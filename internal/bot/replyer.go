package bot

import (
	"context"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Replyer sends reply messages through the messaging platform. The reply
// token is single-use and tied to one inbound event.
//
//go:generate mockgen -package=bot -destination=mock_replyer_test.go -source=replyer.go Replyer
type Replyer interface {
	Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error
}

// LineReplyer sends replies through the LINE messaging API.
type LineReplyer struct {
	bot *linebot.Client
}

func NewLineReplyer(bot *linebot.Client) *LineReplyer {
	return &LineReplyer{bot: bot}
}

func (r *LineReplyer) Reply(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	_, err := r.bot.ReplyMessage(replyToken, messages...).WithContext(ctx).Do()
	return err
}

var _ Replyer = (*LineReplyer)(nil)
