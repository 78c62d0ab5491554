package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agent-orchestrator/pkg/response"
)

const (
	LogPrefixChat = "internal.chat.delivery.http.Chat"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message, forwards it to the matching specialist agent and returns its reply.
// @Description Backend failures produce a fallback reply with HTTP 200.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /agent/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: invalid request: %v", LogPrefixChat, err)
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	decision := h.router.Classify(input.Message)
	h.l.Infof(ctx, "%s: domain=%s scores=%v", LogPrefixChat, decision.Domain, decision.Scores)

	output, err := h.dispatcher.Dispatch(ctx, input, decision)
	if err != nil {
		h.l.Errorf(ctx, "%s: dispatcher.Dispatch: %v", LogPrefixChat, err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}
