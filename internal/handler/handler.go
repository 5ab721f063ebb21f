package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	List(ctx context.Context, viewerID string) ([]*domain.EventSummary, error)
	CancelEvent(ctx context.Context, eventID, callerID string) error
}

type ParticipationSvc interface {
	Join(ctx context.Context, eventID, userID string) error
	Cancel(ctx context.Context, eventID, userID string) error
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, *domain.User, error)
}

type Handler struct {
	eventService         EventSvc
	participationService ParticipationSvc
	userService          UserSvc
}

func NewHandler(eventService EventSvc, participationService ParticipationSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:         eventService,
		participationService: participationService,
		userService:          userService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body", err.Error()))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("User registered successfully", dto.ToUserResponse(user)))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body", err.Error()))
		return
	}

	token, user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Logged in successfully", dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventSummaryResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventSummaryResponse(e))
	}

	c.JSON(http.StatusOK, dto.OK("Events retrieved successfully", resp))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.Fail("Validation Error", err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.Fail("Validation Error",
			map[string]string{"date": "Please enter a valid date."}))
		return
	}

	input := domain.CreateEventInput{
		OrganizerID:     middleware.UserID(c),
		Title:           req.Title,
		Description:     req.Description,
		Date:            date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Event created successfully", dto.ToEventResponse(event)))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid event id", nil))
		return
	}

	if err := h.eventService.CancelEvent(c.Request.Context(), eventID, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Event cancelled successfully", nil))
}

// Participation

func (h *Handler) JoinEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid event id", nil))
		return
	}

	if err := h.participationService.Join(c.Request.Context(), eventID, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Successfully joined the event", nil))
}

func (h *Handler) CancelParticipation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid event id", nil))
		return
	}

	if err := h.participationService.Cancel(c.Request.Context(), eventID, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Participation cancelled successfully", nil))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fieldErrs *domain.FieldErrors

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, dto.Fail("Validation Error", fieldErrs.Fields))

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error(), nil))

	case errors.Is(err, domain.ErrSelfParticipation):
		c.JSON(http.StatusBadRequest, dto.Fail("You cannot participate in your own event", nil))

	case errors.Is(err, domain.ErrEventFull):
		c.JSON(http.StatusBadRequest, dto.Fail("Event is already full", nil))

	case errors.Is(err, domain.ErrAlreadyParticipating):
		c.JSON(http.StatusBadRequest, dto.Fail("You are already participating in this event", nil))

	case errors.Is(err, domain.ErrNotParticipating):
		c.JSON(http.StatusBadRequest, dto.Fail("You are not participating in this event", nil))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Only the organizer can cancel this event", nil))

	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error(), nil))

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error(), nil))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal server error", nil))
	}
}

// parseDate accepts either RFC3339 or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
