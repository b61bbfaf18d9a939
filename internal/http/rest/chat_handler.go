package rest

import (
	"net/http"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) ChatRoutes() chi.Router {
	mux := chi.NewRouter()

	// Websocket clients cannot set custom headers, so the stream skips tracing
	mux.Get("/rooms/{roomID}/ws", api.ChatWebSocketHandler)

	mux.Group(func(r chi.Router) {
		r.Use(RequestTracing)

		r.Method(http.MethodGet, "/rooms", Handler(api.ListChatRoomsHandler))
		r.Method(http.MethodGet, "/rooms/{roomID}", Handler(api.GetChatRoomHandler))
		r.Method(http.MethodGet, "/rooms/{roomID}/messages", Handler(api.ListMessagesHandler))
		// Request Body: { "text": "..." }
		r.Method(http.MethodPost, "/rooms/{roomID}/messages", Handler(api.SendMessageHandler))

		r.Method(http.MethodGet, "/session", Handler(api.GetChatSessionHandler))
		// Request Body: { "room_id": 2 }
		r.Method(http.MethodPut, "/session", Handler(api.SelectChatRoomHandler))
		r.Method(http.MethodPost, "/session/messages", Handler(api.SendSessionMessageHandler))
	})

	return mux
}

func (api *API) ListChatRoomsHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "chat rooms fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       api.Deps.Chat.Rooms(),
	}
}

func (api *API) GetChatRoomHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	roomID, err := util.ParseID(chi.URLParam(r, "roomID"))
	if err != nil {
		return respondWithError(err, "invalid room id", values.BadRequestBody, &tc)
	}

	room, err := api.Deps.Chat.Room(roomID)
	if err != nil {
		return respondWithError(err, "unable to get chat room", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "chat room fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       room,
	}
}

func (api *API) ListMessagesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	roomID, err := util.ParseID(chi.URLParam(r, "roomID"))
	if err != nil {
		return respondWithError(err, "invalid room id", values.BadRequestBody, &tc)
	}

	messages, err := api.Deps.Chat.Messages(roomID)
	if err != nil {
		return respondWithError(err, "unable to get messages", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "messages fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       messages,
	}
}

func (api *API) SendMessageHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	roomID, err := util.ParseID(chi.URLParam(r, "roomID"))
	if err != nil {
		return respondWithError(err, "invalid room id", values.BadRequestBody, &tc)
	}

	var req model.SendMessageRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "Invalid request payload", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, util.ValidationMessage(err), values.BadRequestBody, &tc)
	}

	msg, err := api.Deps.Chat.Send(r.Context(), roomID, req.Text)
	if err != nil {
		return respondWithError(err, "unable to send message", errorStatus(err), &tc)
	}
	return sentResponse(msg)
}

func (api *API) GetChatSessionHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	view, err := api.Deps.Session.View()
	if err != nil {
		return respondWithError(err, "unable to load chat", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "chat fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       view,
	}
}

func (api *API) SelectChatRoomHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.SelectRoomRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "Invalid request payload", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, util.ValidationMessage(err), values.BadRequestBody, &tc)
	}

	if err := api.Deps.Session.Select(req.RoomID); err != nil {
		return respondWithError(err, "unable to select chat room", errorStatus(err), &tc)
	}

	view, err := api.Deps.Session.View()
	if err != nil {
		return respondWithError(err, "unable to load chat", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "chat room selected",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       view,
	}
}

func (api *API) SendSessionMessageHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.SendMessageRequest
	if err := util.DecodeJSONBody(&tc, r.Body, &req); err != nil {
		return respondWithError(err, "Invalid request payload", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, util.ValidationMessage(err), values.BadRequestBody, &tc)
	}

	msg, err := api.Deps.Session.Send(r.Context(), req.Text)
	if err != nil {
		return respondWithError(err, "unable to send message", errorStatus(err), &tc)
	}
	return sentResponse(msg)
}

// sentResponse reports a send; blank input produces no message.
func sentResponse(msg *model.Message) *ServerResponse {
	if msg == nil {
		return &ServerResponse{
			Message:    "empty message ignored",
			Status:     values.Success,
			StatusCode: util.StatusCode(values.Success),
		}
	}
	return &ServerResponse{
		Message:    "message sent",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       msg,
	}
}

func (api *API) ChatWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := util.ParseID(chi.URLParam(r, "roomID"))
	if err != nil {
		writeErrorResponse(w, err, values.BadRequestBody, "invalid room id")
		return
	}
	if _, err := api.Deps.Chat.Room(roomID); err != nil {
		writeErrorResponse(w, err, errorStatus(err), "unable to get chat room")
		return
	}

	api.Deps.WebSocket.HandleConnections(w, r, roomID)
}
