package main

import (
    "os"

    "github.com/zachhersick/macro-muse-mvp/config"
    "github.com/zachhersick/macro-muse-mvp/routes"

    log "github.com/sirupsen/logrus"
)

func main() {
    config.InitDB()

    r := routes.SetupRouter()

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }

    log.Infof("listening on :%s", port)
    if err := r.Run(":" + port); err != nil {
        log.Fatalf("server exited: %v", err)
    }
}
