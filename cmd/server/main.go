package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/config"
	"github.com/vietmedtour/backend/internal/dqa"
	"github.com/vietmedtour/backend/internal/handler"
	"github.com/vietmedtour/backend/internal/pkg/database"
	"github.com/vietmedtour/backend/internal/repository"
	"github.com/vietmedtour/backend/internal/router"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if cfg.Database.Type == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	hospitalRepo := repository.NewHospitalRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	userShareRepo := repository.NewUserShareRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// DQA 流水线，按配置决定是否自动生成
	dqaService := dqa.NewService(hospitalRepo, knowledgeRepo, cfg.Scheduler.Interval, cfg.Scheduler.Enabled)
	dqaService.Initialize()
	defer dqaService.Shutdown()

	// 初始化 Handler
	hospitalHandler := handler.NewHospitalHandler(hospitalRepo)
	knowledgeHandler := handler.NewKnowledgeHandler(knowledgeRepo)
	serviceHandler := handler.NewServiceHandler(serviceRepo)
	userShareHandler := handler.NewUserShareHandler(userShareRepo)
	contactHandler := handler.NewContactHandler(contactRepo)
	webhookHandler := handler.NewWebhookHandler(hospitalRepo, knowledgeRepo, serviceRepo, userShareRepo, contactRepo)
	dqaHandler := handler.NewDQAHandler(dqaService)
	sitemapHandler := handler.NewSitemapHandler(knowledgeRepo, userShareRepo, hospitalRepo, cfg.Site.BaseURL)

	// 设置路由
	r := router.Setup(cfg,
		hospitalHandler, knowledgeHandler, serviceHandler,
		userShareHandler, contactHandler,
		webhookHandler, dqaHandler, sitemapHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s...", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 等待退出信号后先停调度器再关 HTTP
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	klog.V(6).Info("收到退出信号，开始关闭")

	dqaService.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		klog.Errorf("server shutdown: %v", err)
	}
}
