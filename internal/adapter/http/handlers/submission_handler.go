package handlers

import (
	"io"
	"net/http"

	"github.com/gradyrobinson2001-cloud/DustDashboard/internal/infrastructure/intake"
	"github.com/gradyrobinson2001-cloud/DustDashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUnreadableSubmission = pkg.NewDomainErrorSimple("UNREADABLE_SUBMISSION", "Could not read submission body", http.StatusBadRequest)
)

// SubmissionHandler is the HTTP face of the customer-form delivery channel.
// It hands the raw body to the intake queue and answers immediately; the
// payload is validated asynchronously by the consumer.
type SubmissionHandler struct {
	queue *intake.Queue
}

func NewSubmissionHandler(queue *intake.Queue) *SubmissionHandler {
	return &SubmissionHandler{queue: queue}
}

// IngestSubmission always answers 202 for a readable body, even when the
// payload later turns out to be malformed; the queue logs and drops those.
func (h *SubmissionHandler) IngestSubmission(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errUnreadableSubmission.HTTPStatus, errUnreadableSubmission.ToHTTPError())
		return
	}

	accepted := h.queue.Publish(raw)
	c.JSON(http.StatusAccepted, gin.H{"accepted": accepted})
}
