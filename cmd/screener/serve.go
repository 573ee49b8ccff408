package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campushire/screener/internal/config"
	"campushire/screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local screener backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log.Println("✅ Config loaded successfully")

		srv, err := server.New(cfg)
		if err != nil {
			return err
		}
		log.Println("✅ Server initialized successfully")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-quit
			log.Println("\n🛑 Shutting down server...")
			if err := srv.Shutdown(); err != nil {
				log.Printf("❌ Server forced to shutdown: %v", err)
			}
		}()

		log.Printf("🚀 Server starting on :%s\n", cfg.Server.Port)
		return srv.Listen()
	},
}
