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

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Post("/user/verification/request", authMiddleware.ThenFunc(app.userHandler.RequestVerification))
	mux.Post("/user/verification/confirm", authMiddleware.ThenFunc(app.userHandler.ConfirmVerification))

	// Listings
	mux.Post("/listing", authMiddleware.ThenFunc(app.listingHandler.CreateListing))
	mux.Post("/listing/filtered", standardMiddleware.ThenFunc(app.listingHandler.GetFilteredListings))
	mux.Get("/listing/user/:user_id", authMiddleware.ThenFunc(app.listingHandler.GetListingsByUserID))
	mux.Get("/listing/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListingByID))
	mux.Put("/listing/:id", authMiddleware.ThenFunc(app.listingHandler.UpdateListing))
	mux.Del("/listing/:id", authMiddleware.ThenFunc(app.listingHandler.DeleteListing))
	mux.Put("/listing/:id/archive", authMiddleware.ThenFunc(app.listingHandler.ArchiveListing))

	// Contracts
	mux.Get("/listing/:id/contract", authMiddleware.ThenFunc(app.contractHandler.GetContract))

	// Escrow
	mux.Post("/escrow", authMiddleware.ThenFunc(app.escrowHandler.CreateHold))
	mux.Post("/escrow/callback", standardMiddleware.ThenFunc(app.escrowHandler.Callback))
	mux.Put("/escrow/:id/release", authMiddleware.ThenFunc(app.escrowHandler.Release))
	mux.Put("/escrow/:id/refund", authMiddleware.ThenFunc(app.escrowHandler.Refund))
	mux.Get("/escrow/user/:user_id", authMiddleware.ThenFunc(app.escrowHandler.GetTransactionsByUserID))

	fileServer := http.FileServer(http.Dir("./uploads"))
	mux.Get("/uploads/", http.StripPrefix("/uploads", fileServer))

	return mux
}
