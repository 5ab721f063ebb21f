package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	hmocks "github.com/stpnv0/EventHub/internal/handler/mocks"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testUserID = "4e7f0c31-8f43-4a6e-9d4e-0f6d9f2a1c55"

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockParticipationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	participationSvc := hmocks.NewMockParticipationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, participationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		events := api.Group("/events", middleware.WithUserID(testUserID))
		{
			events.GET("", h.ListEvents)
			events.POST("", h.CreateEvent)
			events.POST("/:id/cancel", h.CancelEvent)
			events.POST("/:id/participate", h.JoinEvent)
			events.DELETE("/:id/participate", h.CancelParticipation)
		}
	}

	return eventSvc, participationSvc, userSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: testUserID, Email: "alice@example.com", CreatedAt: time.Now()}
	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Status)
}

func TestHandler_Register_Validation(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, &domain.FieldErrors{Fields: map[string]string{"password": "The password must be at least 8 characters."}})

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Status)
	assert.NotNil(t, resp.Error)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: testUserID, Email: "alice@example.com"}
	userSvc.EXPECT().Authenticate(mock.Anything, "alice@example.com", "secret-password").
		Return("token123", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Status)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Authenticate(mock.Anything, "alice@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	summaries := []*domain.EventSummary{
		{
			Event:             domain.Event{ID: uuid.New().String(), Title: "Meetup"},
			OrganizerEmail:    "org@example.com",
			ParticipantsCount: 3,
			IsParticipating:   true,
		},
	}
	eventSvc.EXPECT().List(mock.Anything, testUserID).Return(summaries, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Status)
	assert.Equal(t, "Events retrieved successfully", resp.Message)
}

func TestHandler_ListEvents_Internal(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, testUserID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Status)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           "Meetup",
		Date:            time.Now().Add(24 * time.Hour),
		Location:        "Moscow",
		MaxParticipants: 10,
		OrganizerID:     testUserID,
	}
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.OrganizerID == testUserID && in.Title == "Meetup"
	})).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:           "Meetup",
		Date:            time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Location:        "Moscow",
		MaxParticipants: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Event created successfully", resp.Message)
}

func TestHandler_CreateEvent_DateOnly(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(&domain.Event{ID: uuid.New().String()}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:           "Meetup",
		Date:            time.Now().Add(24 * time.Hour).Format("2006-01-02"),
		Location:        "Moscow",
		MaxParticipants: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:           "Meetup",
		Date:            "not-a-date",
		Location:        "Moscow",
		MaxParticipants: 10,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, &domain.FieldErrors{Fields: map[string]string{"date": "The event date must be today or a future date."}})

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:           "Meetup",
		Date:            "2020-01-01",
		Location:        "Moscow",
		MaxParticipants: 10,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Validation Error", resp.Message)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().CancelEvent(mock.Anything, eventID, testUserID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelEvent_Forbidden(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().CancelEvent(mock.Anything, eventID, testUserID).Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Participation ---

func TestHandler_JoinEvent_Success(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	participationSvc.EXPECT().Join(mock.Anything, eventID, testUserID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Successfully joined the event", resp.Message)
}

func TestHandler_JoinEvent_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"self participation", domain.ErrSelfParticipation, http.StatusBadRequest},
		{"event full", domain.ErrEventFull, http.StatusBadRequest},
		{"already participating", domain.ErrAlreadyParticipating, http.StatusBadRequest},
		{"not found", domain.ErrEventNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, participationSvc, _, r := setupRouter(t)

			eventID := uuid.New().String()
			participationSvc.EXPECT().Join(mock.Anything, eventID, testUserID).Return(tt.err)

			w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/participate", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Status)
		})
	}
}

func TestHandler_JoinEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/not-a-uuid/participate", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelParticipation_Success(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	participationSvc.EXPECT().Cancel(mock.Anything, eventID, testUserID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID+"/participate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelParticipation_NotParticipating(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	participationSvc.EXPECT().Cancel(mock.Anything, eventID, testUserID).Return(domain.ErrNotParticipating)

	w := doJSON(t, r, http.MethodDelete, "/api/events/"+eventID+"/participate", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
