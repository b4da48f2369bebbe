package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	"github.com/featureblastlabs/featureblast/pkg/db/pagination"
)

type featureResponse struct {
	ID          int64  `json:"id,string"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FeatureType string `json:"feature_type"`
	Impressions int64  `json:"impressions"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toFeatureResponse(f *featuredomain.Feature) featureResponse {
	return featureResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		FeatureType: string(f.FeatureType),
		Impressions: f.Impressions,
		CreatedAt:   f.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   f.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *Server) ListFeatures(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.featureSvc.List(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	features := make([]featureResponse, 0, len(result.Features))
	for i := range result.Features {
		features = append(features, toFeatureResponse(&result.Features[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      features,
		"page_info": result.PageInfo,
	})
}

func (s *Server) CreateFeature(c *gin.Context) {
	var req featuredomain.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	feature, err := s.featureSvc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": toFeatureResponse(feature)})
}

func (s *Server) GetFeatureByID(c *gin.Context) {
	featureID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	feature, err := s.featureSvc.Get(c.Request.Context(), currentUserID(c), featureID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toFeatureResponse(feature)})
}
