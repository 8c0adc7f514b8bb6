// Package bot handles inbound LINE webhook events and turns them into
// replies.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"stockbot/internal/health"
	"stockbot/internal/intent"
	"stockbot/internal/provider"
	"stockbot/internal/quote"
	"stockbot/internal/reply"
	"stockbot/internal/ticker"
)

// Handler is the webhook endpoint. Signature verification is delegated to
// the LINE SDK; everything after that is command dispatch.
type Handler struct {
	channelSecret string
	replyer       Replyer
	quotes        *quote.Service
	checkups      *health.Service
	suffix        string
	logger        *slog.Logger
}

func NewHandler(channelSecret string, r Replyer, quotes *quote.Service, checkups *health.Service, suffix string, logger *slog.Logger) *Handler {
	return &Handler{
		channelSecret: channelSecret,
		replyer:       r,
		quotes:        quotes,
		checkups:      checkups,
		suffix:        suffix,
		logger:        logger,
	}
}

// ServeHTTP answers 400 on an invalid signature, 500 on any processing or
// reply failure, and 200 "OK" otherwise.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	events, err := linebot.ParseRequest(h.channelSecret, r)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
		h.logger.Error("parse webhook request", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	for _, ev := range events {
		if err := h.handleEvent(r.Context(), ev); err != nil {
			h.logger.Error("handle event", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleEvent dispatches one webhook event. Non-message events and
// non-text messages are ignored.
func (h *Handler) handleEvent(ctx context.Context, ev *linebot.Event) error {
	if ev.Type != linebot.EventTypeMessage {
		return nil
	}
	msg, ok := ev.Message.(*linebot.TextMessage)
	if !ok {
		return nil
	}
	return h.handleText(ctx, ev.ReplyToken, msg.Text)
}

// handleText classifies the message and sends exactly one reply.
func (h *Handler) handleText(ctx context.Context, replyToken, text string) error {
	in := intent.Classify(text)
	h.logger.Info("inbound message", "text", text, "kind", in.Kind)

	switch in.Kind {
	case intent.Menu:
		return h.replyer.Reply(ctx, replyToken, menuMessage())
	case intent.Malformed:
		if in.Cmd == intent.Checkup {
			return h.replyText(ctx, replyToken, reply.CheckupUsage)
		}
		return h.replyText(ctx, replyToken, reply.QuoteUsage)
	case intent.Quote, intent.Bare:
		return h.replyQuote(ctx, replyToken, in.Ticker)
	case intent.Checkup:
		return h.replyCheckup(ctx, replyToken, in.Ticker)
	default:
		return h.replyText(ctx, replyToken, reply.Help)
	}
}

func (h *Handler) replyQuote(ctx context.Context, replyToken, raw string) error {
	sym := ticker.Normalize(raw, h.suffix)
	res, err := h.quotes.Lookup(ctx, sym)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return h.replyText(ctx, replyToken, reply.NotFound(sym.Display))
		}
		return err
	}
	return h.replyText(ctx, replyToken, reply.Quote(res))
}

func (h *Handler) replyCheckup(ctx context.Context, replyToken, raw string) error {
	sym := ticker.Normalize(raw, h.suffix)
	res, err := h.checkups.Checkup(ctx, sym)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return h.replyText(ctx, replyToken, reply.CheckupUnavailable)
		}
		return err
	}
	return h.replyText(ctx, replyToken, reply.Checkup(res))
}

func (h *Handler) replyText(ctx context.Context, replyToken, text string) error {
	return h.replyer.Reply(ctx, replyToken, linebot.NewTextMessage(text))
}
