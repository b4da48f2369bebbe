package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	embeddomain "github.com/featureblastlabs/featureblast/internal/embed/domain"
)

func (s *Server) EmbedScript(c *gin.Context) {
	uidParam := c.Query("uid")
	if uidParam == "" {
		uidParam = c.Query("data-uid")
	}
	colorParam := c.Query("color")
	if colorParam == "" {
		colorParam = c.Query("data-color")
	}

	uid, err := strconv.ParseInt(uidParam, 10, 64)
	if err != nil || uid == 0 {
		AbortWithError(c, embeddomain.ErrMissingUID)
		return
	}

	script, err := s.embedSvc.Render(c.Request.Context(), embeddomain.RenderRequest{
		UserID: uid,
		Color:  colorParam,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/javascript", []byte(script))
}
