package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.LogOut))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post("/user/change_password", authMiddleware.ThenFunc(app.userHandler.UpdatePassword))
	mux.Post("/user/fcm_token", authMiddleware.ThenFunc(app.userHandler.SetFCMToken))
	mux.Post("/user/request_reset", standardMiddleware.ThenFunc(app.userHandler.RequestPasswordReset))
	mux.Post("/user/verify_reset_code", standardMiddleware.ThenFunc(app.userHandler.VerifyResetCode))
	mux.Post("/user/reset_password", standardMiddleware.ThenFunc(app.userHandler.ResetPassword))

	// Properties
	mux.Post("/properties", authMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/properties/map", standardMiddleware.ThenFunc(app.propertyHandler.GetMapProperties))
	mux.Get("/properties/mine", authMiddleware.ThenFunc(app.propertyHandler.GetMyProperties))
	mux.Get("/properties/:id/availability", standardMiddleware.ThenFunc(app.reservationHandler.CheckAvailability))
	mux.Get("/properties/:id/reservations", authMiddleware.ThenFunc(app.reservationHandler.GetByProperty))
	mux.Get("/properties/:id/complaints", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetComplaintsByProperty))
	mux.Add("PATCH", "/properties/:id/archive", authMiddleware.ThenFunc(app.propertyHandler.ArchiveProperty))
	mux.Get("/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetProperty))
	mux.Put("/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/properties/:id", authMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Get("/properties", standardMiddleware.ThenFunc(app.propertyHandler.GetProperties))

	// Reservations
	mux.Post("/reservations", authMiddleware.ThenFunc(app.reservationHandler.CreateReservation))
	mux.Get("/reservations/mine", authMiddleware.ThenFunc(app.reservationHandler.GetMyReservations))
	mux.Add("PATCH", "/reservations/:id", authMiddleware.ThenFunc(app.reservationHandler.UpdateStatus))
	mux.Del("/reservations/:id", authMiddleware.ThenFunc(app.reservationHandler.DeleteReservation))

	// Favorites
	mux.Post("/favorites/:id", authMiddleware.ThenFunc(app.favoriteHandler.AddToFavorites))
	mux.Del("/favorites/:id", authMiddleware.ThenFunc(app.favoriteHandler.RemoveFromFavorites))
	mux.Get("/favorites/check/:id", authMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetMyFavorites))

	// Complaints
	mux.Post("/complaints", authMiddleware.ThenFunc(app.complaintHandler.CreateComplaint))
	mux.Get("/complaints", adminAuthMiddleware.ThenFunc(app.complaintHandler.GetAllComplaints))
	mux.Add("PATCH", "/complaints/:id", adminAuthMiddleware.ThenFunc(app.complaintHandler.UpdateComplaintStatus))
	mux.Del("/complaints/:id", adminAuthMiddleware.ThenFunc(app.complaintHandler.DeleteComplaint))

	// Chat
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Post("/chats", authMiddleware.ThenFunc(app.chatHandler.GetOrCreateChat))
	mux.Get("/chats/:id/messages", authMiddleware.ThenFunc(app.messageHandler.GetMessages))
	mux.Post("/chats/:id/read", authMiddleware.ThenFunc(app.messageHandler.MarkChatRead))
	mux.Get("/chats/:id", authMiddleware.ThenFunc(app.chatHandler.GetChat))
	mux.Del("/chats/:id", authMiddleware.ThenFunc(app.chatHandler.DeleteChat))
	mux.Get("/chats", authMiddleware.ThenFunc(app.chatHandler.GetMyChats))
	mux.Post("/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/messages/unread", authMiddleware.ThenFunc(app.messageHandler.CountUnread))
	mux.Del("/messages/:id", authMiddleware.ThenFunc(app.messageHandler.DeleteMessage))

	// Admin
	mux.Get("/admin/metrics", adminAuthMiddleware.ThenFunc(app.metricsHandler.Dashboard))

	return standardMiddleware.Then(mux)
}
