package handler

import (
	"errors"

	"gigboard/internal/delivery/http/dto"
	"gigboard/internal/delivery/http/middleware"
	"gigboard/internal/pkg/response"
	"gigboard/internal/pkg/validator"
	"gigboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessageHandler struct {
	uc       usecase.MessageUsecase
	validate *validator.Validator
}

type sendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Content    string    `json:"content" validate:"notblank,max=5000"`
}

func NewMessageHandler(uc usecase.MessageUsecase, validate *validator.Validator) *MessageHandler {
	return &MessageHandler{uc: uc, validate: validate}
}

// RegisterRoutes expects r to require authentication.
func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/messages")
	grp.Get("/", h.List)
	grp.Post("/", h.Send)
	grp.Post("/:id/read", h.MarkRead)
}

func (h *MessageHandler) List(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMessages(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.MessageResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewMessageResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	sent, err := h.uc.SendMessage(c.Context(), userID, req.ReceiverID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Recipient not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewMessageResponse(sent))
}

func (h *MessageHandler) MarkRead(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrMessageNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Message not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
