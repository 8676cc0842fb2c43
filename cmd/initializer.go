package main

import (
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"tripgoBack/internal/config"
	"tripgoBack/internal/handlers"
	"tripgoBack/internal/repositories"
	"tripgoBack/internal/services"
	"tripgoBack/utils"
)

type application struct {
	config   config.Config
	errorLog *log.Logger
	infoLog  *log.Logger

	userRepo       *repositories.UserRepository
	userService    *services.UserService
	messageService *services.MessageService

	userHandler    *handlers.UserHandler
	tripHandler    *handlers.TripHandler
	bookingHandler *handlers.BookingHandler
	chatHandler    *handlers.ChatHandler
	messageHandler *handlers.MessageHandler
	healthHandler  *handlers.HealthHandler
	dbTestHandler  *handlers.DBTestHandler
	fcmHandler     *handlers.FCMHandler

	wsManager *WebSocketManager
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcm *messaging.Client, errorLog, infoLog *log.Logger) *application {
	userRepo := &repositories.UserRepository{DB: db}
	tripRepo := &repositories.TripRepository{DB: db}
	bookingRepo := &repositories.BookingRepository{DB: db}
	chatRepo := &repositories.ChatRepository{Db: db}
	messageRepo := &repositories.MessageRepository{Db: db}
	otpRepo := &repositories.OTPRepository{RDB: rdb}

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatalf("token manager: %v", err)
	}
	mailService := &services.MailService{
		Endpoint: cfg.Mail.Endpoint,
		APIKey:   cfg.Mail.APIKey,
		From:     cfg.Mail.From,
	}
	pushService := &services.PushService{Client: fcm, DB: db}

	userService := &services.UserService{
		UserRepo:        userRepo,
		OTPRepo:         otpRepo,
		Mail:            mailService,
		TokenManager:    tokenManager,
		SigningKey:      cfg.JWT.SigningKey,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		ResetCodeTTL:    cfg.ResetCodeTTL,
		GoogleClientID:  cfg.Google.ClientID,
	}
	tripService := &services.TripService{TripRepo: tripRepo}
	bookingService := &services.BookingService{
		BookingRepo: bookingRepo,
		TripRepo:    tripRepo,
		Push:        pushService,
	}
	chatService := &services.ChatService{ChatRepo: chatRepo}
	messageService := &services.MessageService{
		MessageRepo: messageRepo,
		Push:        pushService,
	}

	return &application{
		config:   cfg,
		errorLog: errorLog,
		infoLog:  infoLog,

		userRepo:       userRepo,
		userService:    userService,
		messageService: messageService,

		userHandler:    &handlers.UserHandler{Service: userService},
		tripHandler:    &handlers.TripHandler{Service: tripService},
		bookingHandler: &handlers.BookingHandler{Service: bookingService},
		chatHandler:    &handlers.ChatHandler{ChatService: chatService},
		messageHandler: &handlers.MessageHandler{MessageService: messageService},
		healthHandler:  &handlers.HealthHandler{},
		dbTestHandler:  &handlers.DBTestHandler{DB: db, DSN: cfg.Database.URL},
		fcmHandler:     &handlers.FCMHandler{Push: pushService},
	}
}
