package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/admission"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/auth"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/lifecycle"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/notification"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/pricing"
)

// MyServer bundles the database instance and the services every route
// handler depends on.
type MyServer struct {
	port int

	DB            *database.DBinstanceStruct
	Admission     *admission.Controller
	Pricing       *pricing.Resolver
	Notifications *notification.Store
	Lifecycle     *lifecycle.Service
	Blacklist     auth.JwtBlacklistStore
}

// NewServer construct new http.Server instance wired to the main database
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	resolver := pricing.NewResolver(db)
	store := notification.NewStore(db)

	s := &MyServer{
		port:          port,
		DB:            db,
		Admission:     admission.NewController(),
		Pricing:       resolver,
		Notifications: store,
		Lifecycle:     lifecycle.NewService(db, resolver, store),
		Blacklist:     auth.NewInMemoryBlacklistStore(),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
