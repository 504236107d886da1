package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vietmedtour/backend/config"
	"github.com/vietmedtour/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	hospitalHandler *handler.HospitalHandler,
	knowledgeHandler *handler.KnowledgeHandler,
	serviceHandler *handler.ServiceHandler,
	userShareHandler *handler.UserShareHandler,
	contactHandler *handler.ContactHandler,
	webhookHandler *handler.WebhookHandler,
	dqaHandler *handler.DQAHandler,
	sitemapHandler *handler.SitemapHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/info", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"name":    "vietmedtour-backend",
				"version": "1.0.0",
			})
		})

		hospitals := api.Group("/hospitals")
		{
			hospitals.GET("", hospitalHandler.List)
			hospitals.GET("/:id", hospitalHandler.Get)
			hospitals.DELETE("/:id", hospitalHandler.Delete)
		}

		knowledge := api.Group("/knowledge")
		{
			knowledge.GET("", knowledgeHandler.List)
			knowledge.GET("/:id", knowledgeHandler.Get)
			knowledge.POST("", knowledgeHandler.Create)
			knowledge.POST("/:id/like", knowledgeHandler.Like)
		}

		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/:id", serviceHandler.Get)
		}

		userShares := api.Group("/user-shares")
		{
			userShares.GET("", userShareHandler.List)
			userShares.GET("/:id", userShareHandler.Get)
			userShares.POST("", userShareHandler.Create)
			userShares.PUT("/:id", userShareHandler.Update)
			userShares.POST("/:id/like", userShareHandler.Like)
		}

		contacts := api.Group("/contacts")
		{
			contacts.POST("", contactHandler.Create)
			contacts.GET("", contactHandler.List)
			contacts.PUT("/:id/status", contactHandler.UpdateStatus)
		}

		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("/n8n", webhookHandler.N8N)
			webhooks.POST("/batch", webhookHandler.Batch)
			webhooks.GET("/sync-status", webhookHandler.SyncStatus)
		}

		dqaGroup := api.Group("/dqa")
		{
			dqaGroup.GET("/hospitals", dqaHandler.Hospitals)
			dqaGroup.GET("/hospitals/:id", dqaHandler.Hospital)
			dqaGroup.GET("/chain-hospitals/analyze", dqaHandler.AnalyzeChains)
			dqaGroup.GET("/chain-hospitals/suggestions", dqaHandler.Suggestions)
			dqaGroup.POST("/chain-hospitals/enhance", dqaHandler.Enhance)
			dqaGroup.POST("/generate", dqaHandler.Generate)
			dqaGroup.GET("/stats", dqaHandler.Stats)
			dqaGroup.GET("/status", dqaHandler.Status)
			dqaGroup.POST("/scheduler/:action", dqaHandler.ControlScheduler)
		}

		// 外部静态站点生成器按页拉取 URL 数据
		sitemap := api.Group("/sitemap-paginated")
		{
			sitemap.GET("/knowledge", sitemapHandler.Knowledge)
			sitemap.GET("/sharing", sitemapHandler.Sharing)
			sitemap.GET("/hospitals", sitemapHandler.Hospitals)
		}
	}

	return r
}
