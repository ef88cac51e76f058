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
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles quote generation, approval and rendering.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GenerateQuote creates the quote for an enquiry with captured requirements
// and advances the enquiry to quote_ready in the same call.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	q, err := h.usecase.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// ApproveQuote moves pending_approval -> sent, and the linked enquiry to
// quote_sent.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	q, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AcceptQuote moves sent -> accepted, and the linked enquiry to accepted.
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	q, err := h.usecase.MarkAccepted(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuoteDetails replaces the snapshot on a quote still pending
// approval. The originating enquiry is untouched.
func (h *QuoteHandler) UpdateQuoteDetails(c *gin.Context) {
	var payload request.RequirementsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// RenderQuote prices the quote against the live catalog and returns the
// breakdown plus the customer message preview.
func (h *QuoteHandler) RenderQuote(c *gin.Context) {
	r, err := h.usecase.Render(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRender(r))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidEnquiryID),
		errors.Is(err, usecase.ErrInvalidRequirement):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnquiryNotFound):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_FOUND", "Enquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingDetails):
		return pkg.NewDomainErrorSimple("MISSING_DETAILS", "Enquiry has no captured requirements", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyLinked):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_LINKED", "Enquiry already has a quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_EDITABLE", "Quote can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed from the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
