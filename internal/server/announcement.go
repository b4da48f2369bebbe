package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	announcementdomain "github.com/featureblastlabs/featureblast/internal/announcement/domain"
)

func (s *Server) GenerateAnnouncements(c *gin.Context) {
	var req announcementdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	set, err := s.announcementSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": set})
}
