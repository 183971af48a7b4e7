package handler

import (
	"kuchikomi/internal/usecase"
)

var (
	authHandler         *AuthHandler
	productHandler      *ProductHandler
	reviewHandler       *ReviewHandler
	verificationHandler *VerificationHandler
	pointsHandler       *PointsHandler
	chatHandler         *ChatHandler
	messageHandler      *MessageHandler
	communityHandler    *CommunityHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	pointsUseCase *usecase.PointsUseCase,
	chatUseCase *usecase.ChatUseCase,
	dmUseCase *usecase.DirectMessageUseCase,
	communityUseCase *usecase.CommunityUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	verificationHandler = NewVerificationHandler(verificationUseCase)
	pointsHandler = NewPointsHandler(pointsUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	messageHandler = NewMessageHandler(dmUseCase)
	communityHandler = NewCommunityHandler(communityUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetVerificationHandler() *VerificationHandler {
	return verificationHandler
}

func GetPointsHandler() *PointsHandler {
	return pointsHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetCommunityHandler() *CommunityHandler {
	return communityHandler
}
