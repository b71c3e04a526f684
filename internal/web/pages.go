package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/RacoonMediaServer/rms-gallery/internal/service/builds"
	"github.com/RacoonMediaServer/rms-gallery/internal/viewer"
	"github.com/gin-gonic/gin"
)

type tile struct {
	Index int
	Media model.Media
	Eager bool
}

type galleryData struct {
	Title string
	Build string
	Tiles []tile
	Year  int
}

type viewData struct {
	Title    string
	Build    string
	Index    int
	Position int
	Count    int
	Prev     int
	Next     int
	Item     model.Media
}

// build returns requested build when it is still cached, otherwise makes a new one
func (s *Server) build(id string) *builds.Build {
	if id != "" {
		if b, err := s.s.Builds.GetBuild(id); err == nil {
			return b
		}
	}
	return s.s.Builds.NewBuild()
}

func (s *Server) galleryPage(c *gin.Context) {
	b := s.build(c.Query("build"))

	tiles := make([]tile, len(b.Items))
	for i, m := range b.Items {
		tiles[i] = tile{Index: i, Media: m, Eager: i < s.s.EagerTiles}
	}

	c.HTML(http.StatusOK, "gallery", &galleryData{
		Title: s.s.Title,
		Build: b.ID,
		Tiles: tiles,
		Year:  time.Now().Year(),
	})
}

func (s *Server) viewPage(c *gin.Context) {
	b, err := s.s.Builds.GetBuild(c.Param("build"))
	if err != nil {
		c.String(http.StatusNotFound, "gallery build not found")
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.String(http.StatusNotFound, "invalid item index")
		return
	}

	v := viewer.New(b.Items)
	item, ok := v.Open(index)
	if !ok {
		c.String(http.StatusNotFound, "item not found")
		return
	}

	prev, _ := viewer.Step(v.Current(), -1, len(b.Items))
	next, _ := viewer.Step(v.Current(), 1, len(b.Items))

	c.HTML(http.StatusOK, "view", &viewData{
		Title:    s.s.Title,
		Build:    b.ID,
		Index:    index,
		Position: index + 1,
		Count:    len(b.Items),
		Prev:     prev,
		Next:     next,
		Item:     item,
	})
}
