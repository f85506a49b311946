// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/config"
	"github.com/henghaopu/nuxt-chat/internal/domain"
	"github.com/henghaopu/nuxt-chat/internal/handlers"
	"github.com/henghaopu/nuxt-chat/internal/middleware"
	chatrepo "github.com/henghaopu/nuxt-chat/internal/repository/chat"
	messagerepo "github.com/henghaopu/nuxt-chat/internal/repository/message"
	projectrepo "github.com/henghaopu/nuxt-chat/internal/repository/project"
	"github.com/henghaopu/nuxt-chat/internal/services"
	"github.com/henghaopu/nuxt-chat/internal/services/ai"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.Project{}, &domain.Chat{}, &domain.ChatMessage{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	chatRepo := chatrepo.NewChatRepository(db)
	messageRepo := messagerepo.NewMessageRepository(db)
	projectRepo := projectrepo.NewProjectRepository(db)

	// --- AI Provider ---
	aiCfg := ai.DefaultConfig()
	aiCfg.Provider = ai.ProviderKind(cfg.AIProvider)
	aiCfg.APIKey = cfg.OpenAIAPIKey
	aiCfg.BaseURL = cfg.OpenAIBaseURL
	aiCfg.OllamaHost = cfg.OllamaHost
	aiCfg.Timeout = time.Duration(cfg.AITimeoutSeconds) * time.Second
	if aiCfg.Provider == ai.ProviderOllama {
		aiCfg.Model = cfg.OllamaModel
	} else {
		aiCfg.Model = cfg.OpenAIModel
	}

	provider, err := ai.NewProvider(aiCfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	// --- Services ---
	logger := services.NewProductionLogger("nuxt-chat")

	chatService, err := services.NewChatService(chatRepo, messageRepo, projectRepo, provider, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Service: %v", err)
	}
	chatService.SetModel(aiCfg.Model)
	chatService.SetGenerationTimeout(aiCfg.Timeout)

	projectService := services.NewProjectService(projectRepo, logger)

	// --- Handlers ---
	chatHandler, err := handlers.NewChatHandler(chatService)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Chat Handler: %v", err)
	}
	projectHandler := handlers.NewProjectHandler(projectService)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/chats", chatHandler.GetAllChats).Methods("GET")
	api.HandleFunc("/chats", chatHandler.CreateChat).Methods("POST")
	api.HandleFunc("/chats/{id}", chatHandler.GetChatByID).Methods("GET")
	api.HandleFunc("/chats/{id}", chatHandler.UpdateChat).Methods("PUT")
	api.HandleFunc("/chats/{id}", chatHandler.DeleteChat).Methods("DELETE")
	api.HandleFunc("/chats/{id}/title", chatHandler.GenerateChatTitle).Methods("POST")
	api.HandleFunc("/chats/{id}/messages", chatHandler.GetChatMessages).Methods("GET")
	api.HandleFunc("/chats/{id}/messages", chatHandler.CreateMessage).Methods("POST")
	api.HandleFunc("/chats/{id}/messages", chatHandler.ClearChatMessages).Methods("DELETE")
	api.HandleFunc("/chats/{id}/messages/generate", chatHandler.GenerateMessage).Methods("POST")
	api.HandleFunc("/projects", projectHandler.GetAllProjects).Methods("GET")
	api.HandleFunc("/projects", projectHandler.CreateProject).Methods("POST")
	api.HandleFunc("/projects/{id}", projectHandler.GetProjectByID).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods("PUT")
	api.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods("DELETE")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Server starting on port %s (provider: %s, model: %s)", cfg.ServerPort, cfg.AIProvider, aiCfg.Model)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
