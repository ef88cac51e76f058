package routes

import (
	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEnquiries = "/enquiries"
	PathQuotes    = "/quotes"
	PathPricing   = "/pricing"
)

func addDashboardRoutes(rg *gin.RouterGroup, enquiryHandler *handlers.EnquiryHandler, quoteHandler *handlers.QuoteHandler, pricingHandler *handlers.PricingHandler) {
	enquiries := rg.Group(PathEnquiries)
	{
		enquiries.GET("", enquiryHandler.ListEnquiries)
		enquiries.GET("/:id", enquiryHandler.GetEnquiry)
		enquiries.POST("", enquiryHandler.CreateEnquiry)
		enquiries.PATCH("/:id/request-info", enquiryHandler.RequestInfo)
		enquiries.PATCH("/:id/decline", enquiryHandler.Decline)
		enquiries.PATCH("/:id/details", enquiryHandler.ReceiveInfo)
		enquiries.POST("/:id/quote", quoteHandler.GenerateQuote)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/render", quoteHandler.RenderQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PUT("/:id/details", quoteHandler.UpdateQuoteDetails)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", pricingHandler.GetCatalog)
		pricing.PUT("/:key", pricingHandler.UpdatePrice)
	}
}
