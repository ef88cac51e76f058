package handlers

import (
	"errors"
	"net/http"

	request "github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/dto/request"
	response "github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/dto/response"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
	"github.com/gradyrobinson2001-cloud/DustDashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEnquiryPayload = pkg.NewDomainErrorSimple("INVALID_ENQUIRY_INPUT", "Invalid enquiry payload", http.StatusBadRequest)
)

// EnquiryHandler handles the enquiry side of the dashboard: the inbox list
// and the operator actions that move a contact through the pipeline.
type EnquiryHandler struct {
	usecase usecase.IEnquiryUseCase
}

func NewEnquiryHandler(uc usecase.IEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{usecase: uc}
}

// ListEnquiries returns the inbox, most recent first. ?status= narrows to
// one pipeline stage.
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	enquiries, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnquiries(enquiries))
}

func (h *EnquiryHandler) GetEnquiry(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnquiry(e))
}

// CreateEnquiry logs a contact the operator received outside the system.
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var payload request.EnquiryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnquiryPayload.HTTPStatus, errInvalidEnquiryPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.ResolveChannel(), payload.Suburb, payload.Message)
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEnquiry(e))
}

// RequestInfo marks the info-collection form as sent.
func (h *EnquiryHandler) RequestInfo(c *gin.Context) {
	e, err := h.usecase.RequestInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnquiry(e))
}

// Decline closes an out-of-area enquiry.
func (h *EnquiryHandler) Decline(c *gin.Context) {
	e, err := h.usecase.DeclineOutOfArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnquiry(e))
}

// ReceiveInfo records the customer's requirements against the enquiry.
func (h *EnquiryHandler) ReceiveInfo(c *gin.Context) {
	var payload request.RequirementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEnquiryPayload.HTTPStatus, errInvalidEnquiryPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.ReceiveInfo(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEnquiry(e))
}

func mapEnquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEnquiryID),
		errors.Is(err, usecase.ErrInvalidEnquiry),
		errors.Is(err, usecase.ErrInvalidRequirement):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnquiryNotFound):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_FOUND", "Enquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrSuburbServiced):
		return pkg.NewDomainErrorSimple("SUBURB_SERVICED", "Suburb is inside the serviced area", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
