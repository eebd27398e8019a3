package http

import (
	"github.com/gin-gonic/gin"

	"devflow/pkg/response"
)

// Chat godoc
// @Summary     Chat turn
// @Description Runs one assistant turn. The conversation is resumed from state, or from the stored session, and saved back under session_id. include_analysis defaults to true.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat request"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp
// @Failure     429 {object} response.Resp
// @Failure     502 {object} response.Resp "Model call failed or the turn hit the iteration limit"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: processChatReq: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newChatResp(out))
}

// Status godoc
// @Summary     Service status
// @Description Model name and reachability of the model provider, Google and GitHub. Every failed check carries its reason.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status(c.Request.Context())))
}
