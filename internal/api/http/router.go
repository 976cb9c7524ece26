package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alimhan/buzzroom/internal/monitoring"
)

// SetupRouter wires the game controller and monitoring endpoints into a gin
// engine. CORS is open: the clients are browser and mobile apps served from
// arbitrary origins.
func SetupRouter(controller *GameController, metrics *monitoring.Metrics) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Authorization", "Content-Type", "Origin", "Accept"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	game := router.Group("/game")

	game.POST("/createRoom", controller.CreateRoom)
	game.POST("/joinRoom", controller.JoinRoom)
	game.POST("/rooms/exit", controller.ExitRoom)
	game.GET("/rooms/:roomId", controller.GetRoom)
	game.DELETE("/rooms/:roomId", controller.DeleteRoom)
	game.POST("/rooms/:roomId/nextQuestion", controller.NextQuestion)
	game.GET("/rooms/:roomId/watch", controller.WatchRoom)
	game.POST("/FirstBuzzer", controller.FirstBuzzer)
	game.POST("/resetBuzzing", controller.ResetBuzzing)
	game.POST("/cancelBuzzing", controller.CancelBuzzing)
	game.POST("/final/:roomId", controller.FinalScoreboard)

	return router
}
