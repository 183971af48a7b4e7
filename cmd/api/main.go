package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"kuchikomi/internal/adapter/api"
	"kuchikomi/internal/adapter/api/handler"
	apimiddleware "kuchikomi/internal/adapter/api/middleware"
	"kuchikomi/internal/adapter/api/router"
	"kuchikomi/internal/adapter/repository"
	"kuchikomi/internal/infrastructure/firebase"
	"kuchikomi/internal/infrastructure/storage"
	"kuchikomi/internal/infrastructure/websocket"
	"kuchikomi/internal/usecase"
	"kuchikomi/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account from environment (production) or file (local).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	verificationRepo := repository.NewFirestoreVerificationRepository(firestoreClient)
	pointsRepo := repository.NewFirestorePointsRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	dmRepo := repository.NewFirestoreDirectMessageRepository(firestoreClient)
	communityRepo := repository.NewFirestoreCommunityRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(productRepo)
	pointsUseCase := usecase.NewPointsUseCase(pointsRepo)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, userRepo, storageClient, pointsUseCase, cfg.MaxUploadSizeMB)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, verificationRepo, pointsUseCase, productUseCase)
	chatUseCase := usecase.NewChatUseCase(chatRepo, verificationRepo, pointsUseCase, wsManager)
	dmUseCase := usecase.NewDirectMessageUseCase(dmRepo, reviewRepo, userRepo, wsManager)
	communityUseCase := usecase.NewCommunityUseCase(communityRepo)

	handler.Setup(
		authUseCase,
		productUseCase,
		reviewUseCase,
		verificationUseCase,
		pointsUseCase,
		chatUseCase,
		dmUseCase,
		communityUseCase,
	)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, handler.NewWebSocketHandler(wsManager, authMiddleware))

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
