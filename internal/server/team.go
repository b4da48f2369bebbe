package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	teamdomain "github.com/featureblastlabs/featureblast/internal/team/domain"
)

func (s *Server) ListTeamMembers(c *gin.Context) {
	members, err := s.teamSvc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": members})
}

func (s *Server) InviteTeamMember(c *gin.Context) {
	var req teamdomain.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	member, err := s.teamSvc.Invite(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": member})
}

func (s *Server) RemoveTeamMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.teamSvc.Remove(c.Request.Context(), currentUserID(c), memberID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"removed": true}})
}
