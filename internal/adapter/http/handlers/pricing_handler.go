package handlers

import (
	"errors"
	"net/http"

	request "github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/dto/request"
	response "github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/dto/response"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/domain/entities"
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/usecase"
	"github.com/gradyrobinson2001-cloud/DustDashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler exposes the live catalog and the per-entry price editor.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) GetCatalog(c *gin.Context) {
	entries, err := h.usecase.Catalog(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(entries))
}

// UpdatePrice changes one entry's unit price. Takes effect on the next quote
// render; existing quote snapshots are not touched.
func (h *PricingHandler) UpdatePrice(c *gin.Context) {
	var payload request.PricingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Price == nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	key := entities.ServiceKey(c.Param("key"))
	entry, err := h.usecase.UpdatePrice(c.Request.Context(), key, *payload.Price)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceEntry(key, entry))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNegativePrice):
		return pkg.NewDomainErrorSimple("NEGATIVE_PRICE", "Price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownServiceKey):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE_KEY", "Unknown service key", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
