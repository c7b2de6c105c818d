package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	config.Log.Infow("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatalw("server stopped", "error", err)
	}
}
