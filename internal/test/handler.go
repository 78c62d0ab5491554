package test

import (
	"net/http"

	"agent-orchestrator/internal/router"
	pkgLog "agent-orchestrator/pkg/log"
	"agent-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify classifies a message without dispatching it
// @Summary Test message classification
// @Description Returns the routing decision and keyword scores for a message. Not available in production.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	message := *req.Message
	decision := h.router.Classify(message)

	scores := make(map[string]int, len(decision.Scores))
	for d, s := range decision.Scores {
		scores[d.String()] = s
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q domain=%s scores=%v",
		message, decision.Domain, scores)

	c.JSON(http.StatusOK, ClassifyResponse{
		Message: message,
		Domain:  decision.Domain.String(),
		Scores:  scores,
	})
}
