package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/featureblastlabs/featureblast/internal/analytics"
	analyticsdomain "github.com/featureblastlabs/featureblast/internal/analytics/domain"
	"github.com/featureblastlabs/featureblast/internal/announcement"
	announcementdomain "github.com/featureblastlabs/featureblast/internal/announcement/domain"
	"github.com/featureblastlabs/featureblast/internal/auth"
	authdomain "github.com/featureblastlabs/featureblast/internal/auth/domain"
	"github.com/featureblastlabs/featureblast/internal/auth/session"
	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/embed"
	embeddomain "github.com/featureblastlabs/featureblast/internal/embed/domain"
	"github.com/featureblastlabs/featureblast/internal/feature"
	featuredomain "github.com/featureblastlabs/featureblast/internal/feature/domain"
	"github.com/featureblastlabs/featureblast/internal/impression"
	impressiondomain "github.com/featureblastlabs/featureblast/internal/impression/domain"
	"github.com/featureblastlabs/featureblast/internal/observability"
	obsmiddleware "github.com/featureblastlabs/featureblast/internal/observability/logger"
	obsmetrics "github.com/featureblastlabs/featureblast/internal/observability/metrics"
	"github.com/featureblastlabs/featureblast/internal/providers/ai"
	"github.com/featureblastlabs/featureblast/internal/providers/email"
	"github.com/featureblastlabs/featureblast/internal/ratelimit"
	"github.com/featureblastlabs/featureblast/internal/settings"
	settingsdomain "github.com/featureblastlabs/featureblast/internal/settings/domain"
	"github.com/featureblastlabs/featureblast/internal/team"
	teamdomain "github.com/featureblastlabs/featureblast/internal/team/domain"
)

var Module = fx.Module("http.server",
	config.Module,
	fx.Provide(registerGin),
	auth.Module,
	settings.Module,
	feature.Module,
	impression.Module,
	ai.Module,
	announcement.Module,
	email.Module,
	team.Module,
	analytics.Module,
	embed.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	authsvc         authdomain.Service
	sessions        *session.Manager
	genID           *snowflake.Node
	featureSvc      featuredomain.Service
	impressionSvc   impressiondomain.Service
	announcementSvc announcementdomain.Service
	settingsSvc     settingsdomain.Service
	teamSvc         teamdomain.Service
	analyticsSvc    analyticsdomain.Service
	embedSvc        embeddomain.Service
	trackLimiter    *ratelimit.TrackLimiter
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	Authsvc         authdomain.Service
	Sessions        *session.Manager
	GenID           *snowflake.Node
	FeatureSvc      featuredomain.Service
	ImpressionSvc   impressiondomain.Service
	AnnouncementSvc announcementdomain.Service
	SettingsSvc     settingsdomain.Service
	TeamSvc         teamdomain.Service
	AnalyticsSvc    analyticsdomain.Service
	EmbedSvc        embeddomain.Service
	TrackLimiter    *ratelimit.TrackLimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		authsvc:         p.Authsvc,
		sessions:        p.Sessions,
		genID:           p.GenID,
		featureSvc:      p.FeatureSvc,
		impressionSvc:   p.ImpressionSvc,
		announcementSvc: p.AnnouncementSvc,
		settingsSvc:     p.SettingsSvc,
		teamSvc:         p.TeamSvc,
		analyticsSvc:    p.AnalyticsSvc,
		embedSvc:        p.EmbedSvc,
		trackLimiter:    p.TrackLimiter,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerPublicRoutes()
	svc.registerFallback()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.WebAuthRequired())

	// -------- Features --------
	api.GET("/features", s.ListFeatures)
	api.POST("/features", s.CreateFeature)
	api.GET("/features/:id", s.GetFeatureByID)

	// -------- Announcements --------
	api.POST("/announcements/generate", s.GenerateAnnouncements)

	// -------- Team --------
	api.GET("/team", s.ListTeamMembers)
	api.POST("/team", s.InviteTeamMember)
	api.DELETE("/team/:id", s.RemoveTeamMember)

	// -------- Settings --------
	api.GET("/settings", s.GetSettings)
	api.PATCH("/settings", s.UpdateSettings)
	api.POST("/settings/plan", s.SetPlan)

	// -------- Analytics --------
	api.GET("/analytics", s.GetAnalytics)
}

func (s *Server) registerPublicRoutes() {
	s.engine.POST("/track", s.TrackRateLimit(), s.TrackImpression)
	s.engine.GET("/embed.js", s.EmbedScript)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		// static assets (vite)
		if fileExists("./public", c.Request.URL.Path) {
			c.File("./public" + c.Request.URL.Path)
			return
		}

		// SPA fallback
		c.File("./public/index.html")
	})
}

func fileExists(publicDir, reqPath string) bool {
	clean := filepath.Clean(reqPath)

	// prevent path traversal
	if clean == "." || clean == "/" || clean == ".." {
		return false
	}

	fullPath := filepath.Join(publicDir, clean)

	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
