package web

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const mediaCacheControl = "public, max-age=3600"

func (s *Server) serveMedia(c *gin.Context) {
	full, err := s.s.Media.Resolve(c.Param("file"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", mediaCacheControl)
	c.File(full)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
