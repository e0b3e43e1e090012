package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-delivery-service/internal/config"
	"github.com/s21platform/chat-delivery-service/internal/model"
	"github.com/s21platform/chat-delivery-service/internal/pkg/validator"
)

const maxPresenceUsers = 100

type Handler struct {
	service      ChatService
	jwtGenerator JWTGenerator
	pollLimiter  PollLimiter
	presence     PresenceReader
}

func New(service ChatService, jwtGenerator JWTGenerator, pollLimiter PollLimiter, presence PresenceReader) *Handler {
	return &Handler{
		service:      service,
		jwtGenerator: jwtGenerator,
		pollLimiter:  pollLimiter,
		presence:     presence,
	}
}

func (h *Handler) SendCommunityMessage(w http.ResponseWriter, r *http.Request, communityID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendCommunityMessage")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	replyTo, err := optionalUUID(req.ReplyTo)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid reply_to: %v", err))
		h.writeError(w, "invalid reply_to", http.StatusBadRequest)
		return
	}

	message, err := h.service.SendCommunityMessage(r.Context(), senderID, communityID, req.Content, replyTo)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send community message: %v", err))
		h.writeServiceError(w, "failed to send message", err)
		return
	}

	h.writeJSON(w, message, http.StatusCreated)
}

func (h *Handler) SendDirectMessage(w http.ResponseWriter, r *http.Request, peerID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendDirectMessage")

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	replyTo, err := optionalUUID(req.ReplyTo)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid reply_to: %v", err))
		h.writeError(w, "invalid reply_to", http.StatusBadRequest)
		return
	}

	message, err := h.service.SendDirectMessage(r.Context(), senderID, peerID, req.Content, replyTo)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send direct message: %v", err))
		h.writeServiceError(w, "failed to send message", err)
		return
	}

	h.writeJSON(w, message, http.StatusCreated)
}

func (h *Handler) GetCommunityHistory(w http.ResponseWriter, r *http.Request, communityID string, params HistoryParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCommunityHistory")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	messages, hasMore, err := h.service.CommunityHistory(r.Context(), userUUID, communityID, params.Before, pageLimit(params.Limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeServiceError(w, "failed to fetch messages", err)
		return
	}

	h.writeJSON(w, CommunityHistoryResponse{Messages: messages, HasMore: hasMore}, http.StatusOK)
}

func (h *Handler) GetDirectHistory(w http.ResponseWriter, r *http.Request, conversationID string, params HistoryParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetDirectHistory")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(conversationID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	messages, hasMore, err := h.service.DirectHistory(r.Context(), userUUID, id, params.Before, pageLimit(params.Limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch direct messages: %v", err))
		h.writeServiceError(w, "failed to fetch messages", err)
		return
	}

	h.writeJSON(w, DirectHistoryResponse{Messages: messages, HasMore: hasMore}, http.StatusOK)
}

func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request, messageID string, params HistoryParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetReplies")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message id: %v", err))
		h.writeError(w, "invalid message id", http.StatusBadRequest)
		return
	}

	replies, hasMore, err := h.service.Replies(r.Context(), userUUID, id, params.Before, pageLimit(params.Limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch replies: %v", err))
		h.writeServiceError(w, "failed to fetch replies", err)
		return
	}

	h.writeJSON(w, CommunityHistoryResponse{Messages: replies, HasMore: hasMore}, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	scopeKind, id, err := parseMessageTarget(kind, messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message target: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if scopeKind == model.ScopeCommunity {
		err = h.service.RemoveCommunityMessage(r.Context(), userUUID, id)
	} else {
		err = h.service.RemoveDirectMessage(r.Context(), userUUID, id)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message %s: %v", id, err))
		h.writeServiceError(w, "failed to delete message", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	var req EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	scopeKind, id, err := parseMessageTarget(kind, messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message target: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var edited interface{}
	if scopeKind == model.ScopeCommunity {
		edited, err = h.service.EditCommunityMessage(r.Context(), userUUID, id, req.Content)
	} else {
		edited, err = h.service.EditDirectMessage(r.Context(), userUUID, id, req.Content)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to edit message %s: %v", id, err))
		h.writeServiceError(w, "failed to edit message", err)
		return
	}

	h.writeJSON(w, edited, http.StatusOK)
}

func (h *Handler) ReactToMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReactToMessage")

	var req ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	scopeKind, id, err := parseMessageTarget(kind, messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid message target: %v", err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reactions, err := h.service.React(r.Context(), userUUID, scopeKind, id, req.Type)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to react to message %s: %v", id, err))
		h.writeServiceError(w, "failed to react to message", err)
		return
	}

	h.writeJSON(w, ReactResponse{Reactions: reactions}, http.StatusOK)
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListConversations")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	previews, err := h.service.ListConversations(r.Context(), requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeServiceError(w, "failed to get conversations", err)
		return
	}

	conversations := make([]ConversationItem, len(previews))
	for i, preview := range previews {
		var lastMessage *ConversationLastMessage
		if preview.LastMessageID != nil && preview.LastMessageAt != nil {
			lastMessage = &ConversationLastMessage{
				ID:     preview.LastMessageID.String(),
				SentAt: *preview.LastMessageAt,
			}
			if preview.LastMessageContent != nil {
				lastMessage.Content = *preview.LastMessageContent
			}
		}

		conversations[i] = ConversationItem{
			ID:          preview.ID.String(),
			Participant: preview.Participant,
			LastMessage: lastMessage,
			UnreadCount: preview.UnreadCount,
		}
	}

	h.writeJSON(w, ListConversationsResponse{Conversations: conversations}, http.StatusOK)
}

func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request, conversationID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkConversationRead")

	readerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get reader id")
		h.writeError(w, "failed to get reader id", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(conversationID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid conversation id: %v", err))
		h.writeError(w, "invalid conversation id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkConversationRead(r.Context(), readerID, id); err != nil {
		logger.Error(fmt.Sprintf("failed to mark conversation %s read: %v", id, err))
		h.writeServiceError(w, "failed to mark conversation read", err)
		return
	}

	h.writeJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) Poll(w http.ResponseWriter, r *http.Request, params PollParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Poll")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	if h.pollLimiter != nil && !h.pollLimiter.Allow(userUUID) {
		logger.Warn(fmt.Sprintf("poll rate limit exceeded for user %s", userUUID))
		h.writeError(w, "poll rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	since := time.UnixMilli(0)
	if params.Since != nil {
		if *params.Since < 0 {
			h.writeError(w, "since must not be negative", http.StatusBadRequest)
			return
		}
		since = time.UnixMilli(*params.Since)
	}

	scopeID := ""
	if params.ScopeID != nil {
		scopeID = *params.ScopeID
	}

	result, err := h.service.Poll(r.Context(), userUUID, model.PollAction(params.Action), scopeID, since)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to poll %s: %v", params.Action, err))
		h.writeServiceError(w, "failed to poll", err)
		return
	}

	h.writeJSON(w, result, http.StatusOK)
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request, params HistoryParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListNotifications")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	notifications, hasMore, err := h.service.ListNotifications(r.Context(), userUUID, params.Before, pageLimit(params.Limit))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get notifications: %v", err))
		h.writeServiceError(w, "failed to get notifications", err)
		return
	}

	h.writeJSON(w, NotificationsResponse{Notifications: notifications, HasMore: hasMore}, http.StatusOK)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request, notificationID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkNotificationRead")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	id, err := uuid.Parse(notificationID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid notification id: %v", err))
		h.writeError(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkNotificationRead(r.Context(), userUUID, id); err != nil {
		logger.Error(fmt.Sprintf("failed to mark notification %s read: %v", id, err))
		h.writeServiceError(w, "failed to mark notification read", err)
		return
	}

	h.writeJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	h.writeJSON(w, TokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) GetCommunitySubscribeToken(w http.ResponseWriter, r *http.Request, communityID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCommunitySubscribeToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	isMember, err := h.service.IsCommunityMember(r.Context(), communityID, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check community membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check community membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isMember {
		logger.Error("user is not a member of the community")
		h.writeError(w, "user is not a member of the community", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, communityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, TokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

// GetPresence reports which of the requested users hold a live connection.
func (h *Handler) GetPresence(w http.ResponseWriter, r *http.Request, params PresenceParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPresence")

	if len(params.UserIDs) > maxPresenceUsers {
		h.writeError(w, fmt.Sprintf("at most %d users can be queried at once", maxPresenceUsers), http.StatusBadRequest)
		return
	}

	online, err := h.presence.Online(r.Context(), params.UserIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get presence: %v", err))
		h.writeServiceError(w, "failed to get presence", err)
		return
	}

	h.writeJSON(w, PresenceResponse{Online: online}, http.StatusOK)
}

func (h *Handler) GetCommunityTyping(w http.ResponseWriter, r *http.Request, communityID string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetCommunityTyping")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	isMember, err := h.service.IsCommunityMember(r.Context(), communityID, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check community membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check community membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isMember {
		logger.Error("user is not a member of the community")
		h.writeError(w, "user is not a member of the community", http.StatusForbidden)
		return
	}

	users, err := h.presence.Typing(r.Context(), model.CommunityRoom(communityID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get typing users: %v", err))
		h.writeServiceError(w, "failed to get typing users", err)
		return
	}

	h.writeJSON(w, TypingResponse{Users: users}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}

// writeServiceError maps the error kind to a status. Internal failures keep
// the details out of the response body.
func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		h.writeError(w, message, status)
		return
	}
	h.writeError(w, fmt.Sprintf("%s: %v", message, err), status)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrTransport):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func pageLimit(limit *int) int {
	if limit == nil {
		return validator.DefaultPageLimit
	}
	return *limit
}

func optionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseMessageTarget(kind, messageID string) (model.ScopeKind, uuid.UUID, error) {
	scopeKind, err := model.ParseScopeKind(kind)
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := uuid.Parse(messageID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid message id '%s'", messageID)
	}
	return scopeKind, id, nil
}
