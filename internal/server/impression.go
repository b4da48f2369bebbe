package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	impressiondomain "github.com/featureblastlabs/featureblast/internal/impression/domain"
)

// TrackImpression is the public widget callback. It deliberately takes
// the owner ID from the request body, not a session: the widget runs on
// third-party pages with no cookies, so the claim is verified against
// the feature's actual owner instead.
func (s *Server) TrackImpression(c *gin.Context) {
	var req impressiondomain.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, impressiondomain.ErrMissingFields)
		return
	}

	if err := s.impressionSvc.Track(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
