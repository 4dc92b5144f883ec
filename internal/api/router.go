package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/cors"

	"github.com/zigap/skrinja/internal/mail"
	"github.com/zigap/skrinja/internal/registry"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, reg *registry.Registry, jwtSecret string, mailer *mail.Mailer, baseURL string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret, Mailer: mailer, BaseURL: baseURL}
	sharesHandler := &SharesHandler{DB: db}
	boxesHandler := &BoxesHandler{Registry: reg}
	itemsHandler := &ItemsHandler{Registry: reg}
	forestHandler := &ForestHandler{Registry: reg}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation and the three ways to obtain a token.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/link", authHandler.RequestLink)
	mux.HandleFunc("POST /api/auth/link/redeem", authHandler.RedeemLink)

	// Authenticated account management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Sharing.
	mux.Handle("GET /api/shares", authMW(http.HandlerFunc(sharesHandler.List)))
	mux.Handle("POST /api/shares", authMW(http.HandlerFunc(sharesHandler.Create)))
	mux.Handle("DELETE /api/shares/{username}", authMW(http.HandlerFunc(sharesHandler.Delete)))

	// Boxes. All tree routes accept ?owner= to operate on a shared account.
	mux.Handle("POST /api/boxes", authMW(http.HandlerFunc(boxesHandler.Create)))
	mux.Handle("GET /api/boxes/{id}", authMW(http.HandlerFunc(boxesHandler.Get)))
	mux.Handle("PUT /api/boxes/{id}", authMW(http.HandlerFunc(boxesHandler.Update)))
	mux.Handle("DELETE /api/boxes/{id}", authMW(http.HandlerFunc(boxesHandler.Delete)))
	mux.Handle("PUT /api/boxes/{id}/parent", authMW(http.HandlerFunc(boxesHandler.Move)))

	// Items.
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/box", authMW(http.HandlerFunc(itemsHandler.Move)))

	// Whole-forest reads.
	mux.Handle("GET /api/search", authMW(http.HandlerFunc(forestHandler.Search)))
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(forestHandler.Stats)))
	mux.Handle("GET /api/forest", authMW(http.HandlerFunc(forestHandler.Export)))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})

	return c.Handler(mux)
}
