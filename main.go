package main

import (
	"context"
	"log"

	api "blog-backend/cmd/api"
	authdomain "blog-backend/internal/auth/domain"
	authRepo "blog-backend/internal/auth/repository"
	authUsecase "blog-backend/internal/auth/usecase"
	"blog-backend/internal/notification"
	postdomain "blog-backend/internal/post/domain"
	postRepo "blog-backend/internal/post/repository"
	postUsecase "blog-backend/internal/post/usecase"
	"blog-backend/internal/search"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Category{}, &postdomain.Post{}, &postdomain.Comment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	postRepository := postRepo.NewPostRepository(db)
	categoryRepository := postRepo.NewCategoryRepository(db)
	commentRepository := postRepo.NewCommentRepository(db)

	// Initialize the search index and its post-commit hooks
	index := search.NewMemoryIndex()
	hooks := search.NewHooks(index)

	// Initialize the welcome-email task queue. With a project ID configured,
	// tasks go through Pub/Sub and a broker worker delivers them; otherwise an
	// in-process worker pool does both ends.
	mailer := &notification.LogMailer{From: cfg.MailFrom}
	var enqueuer notification.Enqueuer
	if cfg.GoogleProjectID != "" {
		ctx := context.Background()
		pubsubEnqueuer, err := notification.NewPubSubEnqueuer(ctx, cfg.GoogleProjectID, cfg.PubSubTopic)
		if err != nil {
			log.Fatal("Failed to initialize pubsub enqueuer:", err)
		}
		enqueuer = pubsubEnqueuer

		worker, err := notification.NewPubSubWorker(ctx, cfg.GoogleProjectID, cfg.PubSubTopic, mailer)
		if err != nil {
			log.Fatal("Failed to initialize pubsub worker:", err)
		}
		go worker.Start(ctx)
	} else {
		service := notification.NewService(mailer, cfg.MailFrom, cfg.MailWorkers)
		service.Start()
		enqueuer = service
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, enqueuer, cfg)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository, categoryRepository, hooks)
	commentUsecaseInstance := postUsecase.NewCommentUsecase(postRepository, commentRepository)

	// Warm the index from existing posts; the in-memory index does not
	// survive restarts.
	if posts, _, err := postRepository.FindAll(-1, 0); err != nil {
		log.Printf("[Search] Failed to warm index: %v", err)
	} else {
		for _, post := range posts {
			hooks.PostSaved(post)
		}
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, postUsecaseInstance, commentUsecaseInstance, index, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
