package handler

import (
	"errors"
	"fmt"
	"net/http"

	"shopnet/internal/app/market/entity"
	"shopnet/internal/app/market/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContactHandler обрабатывает HTTP запросы адресов доставки
type ContactHandler struct {
	contactService service.ContactServiceInterface
	validator      *validator.Validate
}

// NewContactHandler создает новый обработчик адресов доставки
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator.New(),
	}
}

// ListContacts обрабатывает GET /user/contact
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contacts"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact обрабатывает POST /user/contact
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// UpdateContact обрабатывает PUT /user/contact
// ID обновляемого адреса передается в теле запроса
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Contact ID required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: formatValidationError(err)})
		return
	}

	if err := h.contactService.UpdateContact(c.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, entity.StatusResponse{Status: false, Errors: "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, entity.StatusResponse{Status: true, Message: "Contact updated"})
}

// DeleteContacts обрабатывает DELETE /user/contact
// Поле items содержит список ID адресов через запятую
func (h *ContactHandler) DeleteContacts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req entity.BasketItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "Invalid request body"})
		return
	}

	deleted, err := h.contactService.DeleteContacts(c.Request.Context(), userID, req.Items)
	if err != nil {
		if errors.Is(err, service.ErrNoItems) {
			c.JSON(http.StatusBadRequest, entity.StatusResponse{Status: false, Errors: "No items to delete"})
			return
		}
		c.JSON(http.StatusInternalServerError, entity.StatusResponse{Status: false, Errors: "Failed to delete contacts"})
		return
	}

	c.JSON(http.StatusOK, entity.StatusResponse{
		Status:  true,
		Message: fmt.Sprintf("Deleted %d contacts", deleted),
	})
}
