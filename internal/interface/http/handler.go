package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
)

// Handler wires the HTTP transport to the QA service.
type Handler struct {
	qaSvc  qa.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(qaSvc qa.Service, logger *slog.Logger) *Handler {
	return &Handler{
		qaSvc:  qaSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Ask resolves one question against the corpus. A miss is still a 200: the
// answer field carries the not-found message and match is "ninguna".
func (h *Handler) Ask(c *gin.Context) {
	var req qa.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.qaSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Questions lists the corpus questions in load order.
func (h *Handler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.qaSvc.Questions(c.Request.Context())})
}

// Trending returns the most frequently asked queries.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.qaSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": items})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
