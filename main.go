package main

import (
	"log"
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/handlers"
	"github.com/ChrisCoolDev/qalive-app/middleware"
	"github.com/ChrisCoolDev/qalive-app/routes"
	"github.com/ChrisCoolDev/qalive-app/supabase"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		config.Logger.Fatal("Invalid configuration:", err)
	}
	config.InitLogger(cfg.LogLevel)
	supabase.Init(cfg)

	notifier := authstate.NewNotifier()
	h := handlers.New(notifier, cfg)

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.RequestLogger,
	)(mux)

	log.Println("Server is running on port " + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
