// Command api runs the Inakat recruiting marketplace HTTP server.
package main

import (
	"log"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/server"
)

// @title Inakat Recruiting Marketplace API
// @version 1.0
// @description Backend for job postings, applications and the recruiter/specialist screening workflow.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
