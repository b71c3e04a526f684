package web

import (
	"errors"
	"net/http"

	"github.com/RacoonMediaServer/rms-gallery/internal/catalog"
	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/gin-gonic/gin"
	"go-micro.dev/v4/logger"
)

func (s *Server) getMedia(c *gin.Context) {
	b := s.build(c.Query("build"))
	c.JSON(http.StatusOK, &mediaResponse{
		Build:  b.ID,
		Policy: b.Policy,
		Items:  convertItems(b.Items),
	})
}

func (s *Server) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, &catalogResponse{
		Catalog:  s.s.Catalog.Snapshot(),
		ReadOnly: s.s.Catalog.IsReadOnly(),
	})
}

func (s *Server) putCatalog(c *gin.Context) {
	if s.s.Catalog.IsReadOnly() {
		c.JSON(http.StatusConflict, &errorResponse{Error: "read-only"})
		return
	}

	var req catalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	updated := model.Catalog{
		Priority: req.Priority,
		Base:     req.Base,
		Policy:   s.s.Catalog.Snapshot().Policy,
	}
	if req.Policy != "" {
		p, err := model.ParsePolicy(req.Policy)
		if err != nil {
			c.JSON(http.StatusBadRequest, &errorResponse{Error: err.Error()})
			return
		}
		updated.Policy = p
	}

	if err := s.s.Catalog.Update(c.Request.Context(), updated); err != nil {
		if errors.Is(err, catalog.ErrReadOnly) {
			c.JSON(http.StatusConflict, &errorResponse{Error: "read-only"})
			return
		}
		logger.Errorf("Update catalog failed: %s", err)
		c.JSON(http.StatusInternalServerError, &errorResponse{Error: "update catalog failed"})
		return
	}

	logger.Infof("Catalog updated: %d priority, %d base items, policy %s", len(req.Priority), len(req.Base), updated.Policy)
	c.JSON(http.StatusOK, &catalogResponse{Catalog: s.s.Catalog.Snapshot()})
}
