package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"tripgoBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleClient))
	providerAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleProvider))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/google", standardMiddleware.ThenFunc(app.userHandler.GoogleSignIn))
	mux.Post("/user/refresh_token", standardMiddleware.ThenFunc(app.userHandler.RefreshToken))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.UserLogOut))
	mux.Post("/user/request_reset", standardMiddleware.ThenFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/user/verify_reset_code", standardMiddleware.ThenFunc(app.userHandler.VerifyResetCode))
	mux.Post("/user/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))
	mux.Post("/user/change_password", authMiddleware.ThenFunc(app.userHandler.UpdatePassword))

	// Users
	mux.Post("/user", adminAuthMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get("/user", authMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post("/user/:id/avatar", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))

	// Trips
	mux.Post("/trip", providerAuthMiddleware.ThenFunc(app.tripHandler.CreateTrip))
	mux.Get("/trip", standardMiddleware.ThenFunc(app.tripHandler.GetTrips))
	mux.Get("/trip/:id", standardMiddleware.ThenFunc(app.tripHandler.GetTripByID))
	mux.Put("/trip/:id", providerAuthMiddleware.ThenFunc(app.tripHandler.UpdateTrip))
	mux.Del("/trip/:id", providerAuthMiddleware.ThenFunc(app.tripHandler.DeleteTrip))
	mux.Get("/trip/provider/:provider_id", authMiddleware.ThenFunc(app.tripHandler.GetTripsByProviderID))

	// Bookings
	mux.Post("/booking", authMiddleware.ThenFunc(app.bookingHandler.CreateBooking))
	mux.Get("/booking/:id", authMiddleware.ThenFunc(app.bookingHandler.GetBookingByID))
	mux.Get("/booking/user/:user_id", authMiddleware.ThenFunc(app.bookingHandler.GetBookingsByUserID))
	mux.Get("/booking/trip/:trip_id", providerAuthMiddleware.ThenFunc(app.bookingHandler.GetBookingsByTripID))
	mux.Put("/booking/:id/status", authMiddleware.ThenFunc(app.bookingHandler.UpdateBookingStatus))
	mux.Del("/booking/:id", adminAuthMiddleware.ThenFunc(app.bookingHandler.DeleteBooking))

	// Chats
	mux.Post("/api/chats", authMiddleware.ThenFunc(app.chatHandler.CreateChat))
	mux.Get("/api/chats/:id", authMiddleware.ThenFunc(app.chatHandler.GetChatByID))
	mux.Get("/api/chats/user/:user_id", authMiddleware.ThenFunc(app.chatHandler.GetChatsByUserID))
	mux.Del("/api/chats/:id", authMiddleware.ThenFunc(app.chatHandler.DeleteChat))

	// Messages
	mux.Post("/api/messages", authMiddleware.ThenFunc(app.messageHandler.CreateMessage))
	mux.Get("/api/messages/chat/:chatId", authMiddleware.ThenFunc(app.messageHandler.GetMessagesForChat))
	mux.Del("/api/messages/:messageId", authMiddleware.ThenFunc(app.messageHandler.DeleteMessage))

	// Realtime
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	// Push tokens
	mux.Post("/fcm/token", authMiddleware.ThenFunc(app.fcmHandler.SaveToken))

	// Diagnostics
	mux.Get("/health", standardMiddleware.ThenFunc(app.healthHandler.Health))
	mux.Get("/dbtest", standardMiddleware.ThenFunc(app.dbTestHandler.Test))

	return mux
}
