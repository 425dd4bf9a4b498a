package main

import (
	"log"
	"net/http"
	"os"

	"github.com/rmscampos/gosales/app/cmd"
	"github.com/rmscampos/gosales/app/configs"
	"github.com/rmscampos/gosales/app/routes"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing:", err)
	}

	router := routes.NewRouter(db, keys)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
