package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

type ServerInterface interface {
	SendCommunityMessage(w http.ResponseWriter, r *http.Request, communityID string)
	GetCommunityHistory(w http.ResponseWriter, r *http.Request, communityID string, params HistoryParams)
	GetCommunitySubscribeToken(w http.ResponseWriter, r *http.Request, communityID string)
	SendDirectMessage(w http.ResponseWriter, r *http.Request, peerID string)
	ListConversations(w http.ResponseWriter, r *http.Request)
	GetDirectHistory(w http.ResponseWriter, r *http.Request, conversationID string, params HistoryParams)
	MarkConversationRead(w http.ResponseWriter, r *http.Request, conversationID string)
	GetReplies(w http.ResponseWriter, r *http.Request, messageID string, params HistoryParams)
	DeleteMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string)
	EditMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string)
	ReactToMessage(w http.ResponseWriter, r *http.Request, kind string, messageID string)
	Poll(w http.ResponseWriter, r *http.Request, params PollParams)
	ListNotifications(w http.ResponseWriter, r *http.Request, params HistoryParams)
	MarkNotificationRead(w http.ResponseWriter, r *http.Request, notificationID string)
	GetConnectToken(w http.ResponseWriter, r *http.Request)
	GetPresence(w http.ResponseWriter, r *http.Request, params PresenceParams)
	GetCommunityTyping(w http.ResponseWriter, r *http.Request, communityID string)
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// handler.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux registers every chat route on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
		},
	}

	r.Group(func(r chi.Router) {
		r.Post("/api/chat/communities/{community_id}/messages", wrapper.SendCommunityMessage)
		r.Get("/api/chat/communities/{community_id}/messages", wrapper.GetCommunityHistory)
		r.Get("/api/chat/communities/{community_id}/token", wrapper.GetCommunitySubscribeToken)
		r.Post("/api/chat/direct/{peer_id}/messages", wrapper.SendDirectMessage)
		r.Get("/api/chat/conversations", wrapper.ListConversations)
		r.Get("/api/chat/conversations/{conversation_id}/messages", wrapper.GetDirectHistory)
		r.Post("/api/chat/conversations/{conversation_id}/read", wrapper.MarkConversationRead)
		r.Get("/api/chat/messages/{message_id}/replies", wrapper.GetReplies)
		r.Delete("/api/chat/{kind}/messages/{message_id}", wrapper.DeleteMessage)
		r.Patch("/api/chat/{kind}/messages/{message_id}", wrapper.EditMessage)
		r.Post("/api/chat/{kind}/messages/{message_id}/reactions", wrapper.ReactToMessage)
		r.Get("/api/chat/poll", wrapper.Poll)
		r.Get("/api/chat/notifications", wrapper.ListNotifications)
		r.Post("/api/chat/notifications/{notification_id}/read", wrapper.MarkNotificationRead)
		r.Get("/api/chat/token", wrapper.GetConnectToken)
		r.Get("/api/chat/presence", wrapper.GetPresence)
		r.Get("/api/chat/communities/{community_id}/typing", wrapper.GetCommunityTyping)
	})

	return r
}

func (siw *ServerInterfaceWrapper) SendCommunityMessage(w http.ResponseWriter, r *http.Request) {
	communityID, ok := siw.pathParam(w, r, "community_id")
	if !ok {
		return
	}
	siw.Handler.SendCommunityMessage(w, r, communityID)
}

func (siw *ServerInterfaceWrapper) GetCommunityHistory(w http.ResponseWriter, r *http.Request) {
	communityID, ok := siw.pathParam(w, r, "community_id")
	if !ok {
		return
	}
	params, ok := siw.historyParams(w, r)
	if !ok {
		return
	}
	siw.Handler.GetCommunityHistory(w, r, communityID, params)
}

func (siw *ServerInterfaceWrapper) GetCommunitySubscribeToken(w http.ResponseWriter, r *http.Request) {
	communityID, ok := siw.pathParam(w, r, "community_id")
	if !ok {
		return
	}
	siw.Handler.GetCommunitySubscribeToken(w, r, communityID)
}

func (siw *ServerInterfaceWrapper) SendDirectMessage(w http.ResponseWriter, r *http.Request) {
	peerID, ok := siw.pathParam(w, r, "peer_id")
	if !ok {
		return
	}
	siw.Handler.SendDirectMessage(w, r, peerID)
}

func (siw *ServerInterfaceWrapper) ListConversations(w http.ResponseWriter, r *http.Request) {
	siw.Handler.ListConversations(w, r)
}

func (siw *ServerInterfaceWrapper) GetDirectHistory(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := siw.pathParam(w, r, "conversation_id")
	if !ok {
		return
	}
	params, ok := siw.historyParams(w, r)
	if !ok {
		return
	}
	siw.Handler.GetDirectHistory(w, r, conversationID, params)
}

func (siw *ServerInterfaceWrapper) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := siw.pathParam(w, r, "conversation_id")
	if !ok {
		return
	}
	siw.Handler.MarkConversationRead(w, r, conversationID)
}

func (siw *ServerInterfaceWrapper) GetReplies(w http.ResponseWriter, r *http.Request) {
	messageID, ok := siw.pathParam(w, r, "message_id")
	if !ok {
		return
	}
	params, ok := siw.historyParams(w, r)
	if !ok {
		return
	}
	siw.Handler.GetReplies(w, r, messageID, params)
}

func (siw *ServerInterfaceWrapper) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	kind, messageID, ok := siw.messageParams(w, r)
	if !ok {
		return
	}
	siw.Handler.DeleteMessage(w, r, kind, messageID)
}

func (siw *ServerInterfaceWrapper) EditMessage(w http.ResponseWriter, r *http.Request) {
	kind, messageID, ok := siw.messageParams(w, r)
	if !ok {
		return
	}
	siw.Handler.EditMessage(w, r, kind, messageID)
}

func (siw *ServerInterfaceWrapper) ReactToMessage(w http.ResponseWriter, r *http.Request) {
	kind, messageID, ok := siw.messageParams(w, r)
	if !ok {
		return
	}
	siw.Handler.ReactToMessage(w, r, kind, messageID)
}

func (siw *ServerInterfaceWrapper) Poll(w http.ResponseWriter, r *http.Request) {
	var params PollParams

	if err := runtime.BindQueryParameter("form", true, true, "action", r.URL.Query(), &params.Action); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter action: %w", err))
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "scope_id", r.URL.Query(), &params.ScopeID); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter scope_id: %w", err))
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "since", r.URL.Query(), &params.Since); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter since: %w", err))
		return
	}

	siw.Handler.Poll(w, r, params)
}

func (siw *ServerInterfaceWrapper) ListNotifications(w http.ResponseWriter, r *http.Request) {
	params, ok := siw.historyParams(w, r)
	if !ok {
		return
	}
	siw.Handler.ListNotifications(w, r, params)
}

func (siw *ServerInterfaceWrapper) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := siw.pathParam(w, r, "notification_id")
	if !ok {
		return
	}
	siw.Handler.MarkNotificationRead(w, r, notificationID)
}

func (siw *ServerInterfaceWrapper) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetConnectToken(w, r)
}

func (siw *ServerInterfaceWrapper) GetPresence(w http.ResponseWriter, r *http.Request) {
	var params PresenceParams

	if err := runtime.BindQueryParameter("form", true, true, "user_id", r.URL.Query(), &params.UserIDs); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter user_id: %w", err))
		return
	}

	siw.Handler.GetPresence(w, r, params)
}

func (siw *ServerInterfaceWrapper) GetCommunityTyping(w http.ResponseWriter, r *http.Request) {
	communityID, ok := siw.pathParam(w, r, "community_id")
	if !ok {
		return
	}
	siw.Handler.GetCommunityTyping(w, r, communityID)
}

func (siw *ServerInterfaceWrapper) pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter %s: %w", name, err))
		return "", false
	}
	return value, true
}

func (siw *ServerInterfaceWrapper) messageParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	kind, ok := siw.pathParam(w, r, "kind")
	if !ok {
		return "", "", false
	}
	messageID, ok := siw.pathParam(w, r, "message_id")
	if !ok {
		return "", "", false
	}
	return kind, messageID, true
}

func (siw *ServerInterfaceWrapper) historyParams(w http.ResponseWriter, r *http.Request) (HistoryParams, bool) {
	var params HistoryParams

	if err := runtime.BindQueryParameter("form", true, false, "before", r.URL.Query(), &params.Before); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter before: %w", err))
		return params, false
	}

	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter limit: %w", err))
		return params, false
	}

	return params, true
}
