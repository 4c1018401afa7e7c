package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"turakBack/internal/handlers"
	"turakBack/internal/repositories"
	"turakBack/internal/services"
	"turakBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokens   *utils.Manager
	userRepo *repositories.UserRepository

	userHandler        *handlers.UserHandler
	propertyHandler    *handlers.PropertyHandler
	reservationHandler *handlers.ReservationHandler
	favoriteHandler    *handlers.FavoriteHandler
	complaintHandler   *handlers.ComplaintHandler
	chatHandler        *handlers.ChatHandler
	messageHandler     *handlers.MessageHandler
	metricsHandler     *handlers.MetricsHandler

	messageService *services.MessageService

	wsManager *WebSocketManager
}

func initializeApp(db *sql.DB, rdb *redis.Client, fcm *messaging.Client, storage *utils.S3Storage, tokens *utils.Manager, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := &repositories.UserRepository{DB: db}
	propertyRepo := &repositories.PropertyRepository{DB: db}
	reservationRepo := &repositories.ReservationRepository{DB: db}
	favoriteRepo := &repositories.FavoriteRepository{DB: db}
	complaintRepo := &repositories.ComplaintRepository{DB: db}
	chatRepo := &repositories.ChatRepository{DB: db}
	messageRepo := &repositories.MessageRepository{DB: db}
	metricsRepo := &repositories.MetricsRepository{DB: db}

	// Services
	pushService := &services.PushService{Client: fcm, UserRepo: userRepo}
	userService := &services.UserService{UserRepo: userRepo, Tokens: tokens, Redis: rdb}
	propertyService := &services.PropertyService{PropertyRepo: propertyRepo}
	reservationService := &services.ReservationService{
		ReservationRepo: reservationRepo,
		PropertyRepo:    propertyRepo,
		Push:            pushService,
	}
	favoriteService := &services.FavoriteService{FavoriteRepo: favoriteRepo}
	complaintService := &services.ComplaintService{ComplaintRepo: complaintRepo}
	chatService := &services.ChatService{ChatRepo: chatRepo}
	messageService := &services.MessageService{MessageRepo: messageRepo, ChatRepo: chatRepo, Push: pushService}
	metricsService := &services.MetricsService{MetricsRepo: metricsRepo}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		db:       db,
		tokens:   tokens,
		userRepo: userRepo,

		userHandler:        &handlers.UserHandler{Service: userService},
		propertyHandler:    &handlers.PropertyHandler{Service: propertyService, Storage: storage},
		reservationHandler: &handlers.ReservationHandler{Service: reservationService},
		favoriteHandler:    &handlers.FavoriteHandler{Service: favoriteService},
		complaintHandler:   &handlers.ComplaintHandler{Service: complaintService},
		chatHandler:        &handlers.ChatHandler{Service: chatService},
		messageHandler:     &handlers.MessageHandler{Service: messageService},
		metricsHandler:     &handlers.MetricsHandler{Service: metricsService},

		messageService: messageService,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(35)
	return db, nil
}
