package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func (h *Handlers) IndexHandler(c *gin.Context) {
	cfg := h.manager.Get()

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"parser": cfg.Parser,
	})
}
