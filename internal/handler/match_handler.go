package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vendor-matching/internal/dto"
	middlewarepkg "github.com/octobees/vendor-matching/internal/middleware"
	"github.com/octobees/vendor-matching/internal/service"
	"github.com/octobees/vendor-matching/internal/service/intent"
	"github.com/octobees/vendor-matching/internal/session"
)

const (
	assistantReplyPath    = "/vendor-reply"
	assistantReplyTimeout = 5 * time.Second
)

// MatchHandler serves the conversational vendor matching endpoint.
type MatchHandler struct {
	matcher   *service.MatchingService
	sessions  session.Store
	assistant AssistantPoster
}

// NewMatchHandler wires the handler. sessions and assistant are optional.
func NewMatchHandler(matcher *service.MatchingService, sessions session.Store, assistant AssistantPoster) *MatchHandler {
	return &MatchHandler{matcher: matcher, sessions: sessions, assistant: assistant}
}

// Match handles POST /vendors/match.
func (h *MatchHandler) Match(c echo.Context) error {
	var req dto.MatchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	req.Category = strings.TrimSpace(req.Category)
	req.Region = strings.TrimSpace(req.Region)
	req.ConversationID = strings.TrimSpace(req.ConversationID)

	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, validationMessage(err))
	}

	ctx := c.Request().Context()
	rid := middlewarepkg.RequestIDFromContext(c)
	state := h.loadState(ctx, req.ConversationID, rid)

	query := carryOver(req, state)

	resp, err := h.matcher.Match(ctx, query)
	if err != nil {
		log.Printf("request_id=%s conversation_id=%s vendor match failed: %v", rid, req.ConversationID, err)
		return Failure(c, http.StatusServiceUnavailable, resp.Message, resp)
	}

	h.saveState(ctx, req.ConversationID, rid, resp)

	if resp.Mode == dto.ModeResults && len(resp.Vendors) > 0 {
		resp.Message = h.rephrase(ctx, req.Message, resp, rid)
	}

	return Success(c, http.StatusOK, "vendor match resolved", resp)
}

func (h *MatchHandler) loadState(ctx context.Context, conversationID, rid string) session.State {
	if h.sessions == nil || conversationID == "" {
		return session.State{}
	}
	state, err := h.sessions.Load(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, session.ErrNoState) {
			log.Printf("request_id=%s conversation_id=%s session load failed: %v", rid, conversationID, err)
		}
		return session.State{}
	}
	return state
}

func (h *MatchHandler) saveState(ctx context.Context, conversationID, rid string, resp dto.MatchResponse) {
	if h.sessions == nil || conversationID == "" || resp.Category == nil {
		return
	}
	state := session.State{Category: string(*resp.Category)}
	if resp.Region != nil {
		state.Region = string(*resp.Region)
	}
	if err := h.sessions.Save(ctx, conversationID, state); err != nil {
		log.Printf("request_id=%s conversation_id=%s session save failed: %v", rid, conversationID, err)
	}
}

// rephrase asks the assistant service for a conversational reply. Any
// failure keeps the templated message.
func (h *MatchHandler) rephrase(ctx context.Context, userMessage string, resp dto.MatchResponse, rid string) string {
	if h.assistant == nil {
		return resp.Message
	}

	names := make([]string, 0, len(resp.Vendors))
	for _, v := range resp.Vendors {
		names = append(names, v.Name)
	}
	payload := map[string]any{
		"user_message": userMessage,
		"reply":        resp.Message,
		"category":     resp.Category,
		"region":       resp.Region,
		"vendors":      names,
	}
	if resp.Budget != nil {
		payload["budget_max"] = resp.Budget.Max
	}

	ctx, cancel := context.WithTimeout(ctx, assistantReplyTimeout)
	defer cancel()

	data, err := h.assistant.PostJSON(ctx, assistantReplyPath, payload, rid)
	if err != nil {
		log.Printf("request_id=%s assistant reply failed: %v", rid, err)
		return resp.Message
	}
	if message, ok := data["message"].(string); ok && strings.TrimSpace(message) != "" {
		return strings.TrimSpace(message)
	}
	return resp.Message
}

// carryOver builds the matching query. Explicit request values win, then
// whatever the new message names, and only then what earlier turns stored.
func carryOver(req dto.MatchRequest, state session.State) dto.MatchQuery {
	query := dto.MatchQuery{RawMessage: req.Message}
	normalized := intent.Normalize(req.Message)

	if category, ok := intent.ParseCategory(req.Category); ok {
		query.ProvidedCategory = &category
	} else if _, detected := intent.DetectCategory(normalized); !detected {
		if stored, ok := intent.ParseCategory(state.Category); ok {
			query.ProvidedCategory = &stored
		}
	}

	if region, ok := intent.ParseRegion(req.Region); ok {
		query.ProvidedRegion = &region
	} else if _, detected := intent.ExtractRegion(normalized); !detected {
		if stored, ok := intent.ParseRegion(state.Region); ok {
			query.ProvidedRegion = &stored
		}
	}

	return query
}
