package main

import (
	"os"

	"elite-drive/cmd/command"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           elite-drive
// @version         1.0
// @description     Showroom backend: cars, viewing slots, test drive bookings and service alerts.

// @BasePath  /
// @schemes http https
func main() {
	command.Execute()
}
