package handlers

import (
	"github.com/gin-gonic/gin"
	"ircwire/internal/app/domain/parser"
	"ircwire/pkg/irc"
	"log/slog"
	"net/http"
)

type parseRequest struct {
	Line string `json:"line"`
}

type parseResponse struct {
	Message *irc.Message `json:"message"`
	Line    string       `json:"line"`
}

type formatResponse struct {
	Line string `json:"line"`
}

// ParseHandler parses {"line": "..."} and answers with the message and its
// canonical wire form.
func (h *Handlers) ParseHandler(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	msg, err := h.parser.Parse(req.Line)
	if err != nil {
		h.log.Debug("Rejected line", slog.String("line", req.Line), slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: parser.ErrorKind(err)})
		return
	}

	c.JSON(http.StatusOK, parseResponse{Message: msg, Line: irc.Format(msg)})
}

func (h *Handlers) FormatHandler(c *gin.Context) {
	var msg irc.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, formatResponse{Line: irc.Format(&msg)})
}
