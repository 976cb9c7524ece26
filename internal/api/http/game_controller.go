package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alimhan/buzzroom/internal/api/http/converter"
	"github.com/alimhan/buzzroom/internal/events"
	"github.com/alimhan/buzzroom/internal/models"
	"github.com/alimhan/buzzroom/internal/services/game"
)

// GameController exposes the game service over HTTP
type GameController struct {
	games game.Service
	hub   *events.Hub
	log   *slog.Logger
}

// NewGameController creates a controller bound to a game service and the
// room-watch hub
func NewGameController(games game.Service, hub *events.Hub, log *slog.Logger) *GameController {
	if log == nil {
		log = slog.Default()
	}
	return &GameController{
		games: games,
		hub:   hub,
		log:   log,
	}
}

type playerRequest struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (p *playerRequest) toModel() *models.Player {
	return &models.Player{
		ID:     p.ID,
		Name:   p.Name,
		Avatar: p.Avatar,
	}
}

// CreateRoom handles POST /game/createRoom
func (c *GameController) CreateRoom(ctx *gin.Context) {
	type createRoomRequest struct {
		RoomNumber   string         `json:"roomNumber" binding:"required"`
		RoomPassword string         `json:"roomPassword" binding:"required"`
		Host         *playerRequest `json:"host" binding:"required"`
	}
	var req createRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	out, err := c.games.CreateRoom(ctx.Request.Context(), &game.CreateRoomInput{
		RoomNumber:   req.RoomNumber,
		RoomPassword: req.RoomPassword,
		Host:         req.Host.toModel(),
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"roomId": out.RoomID, "status": "success"})
}

// JoinRoom handles POST /game/joinRoom
func (c *GameController) JoinRoom(ctx *gin.Context) {
	type joinRoomRequest struct {
		RoomNumber   string         `json:"roomNumber" binding:"required"`
		RoomPassword string         `json:"roomPassword" binding:"required"`
		Player       *playerRequest `json:"player" binding:"required"`
	}
	var req joinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	out, err := c.games.JoinRoom(ctx.Request.Context(), &game.JoinRoomInput{
		RoomNumber:   req.RoomNumber,
		RoomPassword: req.RoomPassword,
		Player:       req.Player.toModel(),
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	c.publishSnapshot(ctx.Request.Context(), out.RoomID)

	ctx.JSON(http.StatusOK, gin.H{"room_id": out.RoomID, "player_id": out.PlayerID})
}

// ExitRoom handles POST /game/rooms/exit
func (c *GameController) ExitRoom(ctx *gin.Context) {
	type exitRoomRequest struct {
		RoomID string         `json:"roomId" binding:"required"`
		Player *playerRequest `json:"player" binding:"required"`
	}
	var req exitRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	out, err := c.games.ExitRoom(ctx.Request.Context(), &game.ExitRoomInput{
		RoomID:   req.RoomID,
		PlayerID: req.Player.ID,
	})
	if err != nil {
		// Exiting a room that is already gone is a success for the client
		if errors.Is(err, game.ErrRoomNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"status": "success"})
			return
		}
		c.renderError(ctx, err)
		return
	}

	if out.RoomDeleted {
		c.hub.CloseRoom(req.RoomID)
	} else {
		c.publishSnapshot(ctx.Request.Context(), req.RoomID)
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteRoom handles DELETE /game/rooms/:roomId
func (c *GameController) DeleteRoom(ctx *gin.Context) {
	roomID := ctx.Param("roomId")

	if _, err := c.games.DeleteRoom(ctx.Request.Context(), &game.DeleteRoomInput{RoomID: roomID}); err != nil {
		c.renderError(ctx, err)
		return
	}

	c.hub.CloseRoom(roomID)

	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetRoom handles GET /game/rooms/:roomId
func (c *GameController) GetRoom(ctx *gin.Context) {
	out, err := c.games.GetRoom(ctx.Request.Context(), &game.GetRoomInput{
		RoomID: ctx.Param("roomId"),
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"room":    converter.RoomToAPI(out.Room),
		"players": converter.PlayersToAPI(out.Players),
	})
}

// NextQuestion handles POST /game/rooms/:roomId/nextQuestion
func (c *GameController) NextQuestion(ctx *gin.Context) {
	roomID := ctx.Param("roomId")
	currentQuestionID := ctx.Query("currentQuestionId")
	if currentQuestionID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "currentQuestionId is required"})
		return
	}

	out, err := c.games.AdvanceQuestion(ctx.Request.Context(), &game.AdvanceQuestionInput{
		RoomID:            roomID,
		CurrentQuestionID: currentQuestionID,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	c.publishSnapshot(ctx.Request.Context(), roomID)

	ctx.JSON(http.StatusOK, gin.H{"questionId": out.QuestionID})
}

// FirstBuzzer handles POST /game/FirstBuzzer
func (c *GameController) FirstBuzzer(ctx *gin.Context) {
	type buzzerRequest struct {
		RoomID   string `json:"roomId" binding:"required"`
		PlayerID string `json:"playerId" binding:"required"`
	}
	var req buzzerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid roomId or playerId"})
		return
	}

	out, err := c.games.ClaimFirstBuzzer(ctx.Request.Context(), &game.ClaimFirstBuzzerInput{
		RoomID:   req.RoomID,
		PlayerID: req.PlayerID,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	if out.Accepted {
		c.publishSnapshot(ctx.Request.Context(), req.RoomID)
	}

	// A lost race is a normal negative result, still a 200
	ctx.JSON(http.StatusOK, gin.H{
		"accepted":    out.Accepted,
		"firstBuzzer": out.FirstBuzzer,
	})
}

// ResetBuzzing handles POST /game/resetBuzzing: the host marked the answer
// correct, the claimant is awarded the question's points
func (c *GameController) ResetBuzzing(ctx *gin.Context) {
	req, ok := c.bindSettleRequest(ctx)
	if !ok {
		return
	}

	out, err := c.games.ResolveBuzz(ctx.Request.Context(), &game.ResolveBuzzInput{
		RoomID:     req.RoomID,
		QuestionID: req.QuestionID,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	c.publishSnapshot(ctx.Request.Context(), req.RoomID)

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "settled": out.Settled})
}

// CancelBuzzing handles POST /game/cancelBuzzing: the host marked the answer
// wrong, the claimant loses the question's points
func (c *GameController) CancelBuzzing(ctx *gin.Context) {
	req, ok := c.bindSettleRequest(ctx)
	if !ok {
		return
	}

	out, err := c.games.CancelBuzz(ctx.Request.Context(), &game.CancelBuzzInput{
		RoomID:     req.RoomID,
		QuestionID: req.QuestionID,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	c.publishSnapshot(ctx.Request.Context(), req.RoomID)

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "settled": out.Settled})
}

// FinalScoreboard handles POST /game/final/:roomId
func (c *GameController) FinalScoreboard(ctx *gin.Context) {
	roomID := ctx.Param("roomId")

	out, err := c.games.CompileFinalScoreboard(ctx.Request.Context(), &game.CompileFinalScoreboardInput{
		RoomID: roomID,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	if out.PlayerCount > 0 {
		c.publishSnapshot(ctx.Request.Context(), roomID)
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "questionId": out.QuestionID})
}

type settleRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
}

func (c *GameController) bindSettleRequest(ctx *gin.Context) (*settleRequest, bool) {
	var req settleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid roomId or questionId"})
		return nil, false
	}
	return &req, true
}

// publishSnapshot pushes the room's current state to its watchers. A failed
// read only costs watchers one update, so it is logged and swallowed.
func (c *GameController) publishSnapshot(ctx context.Context, roomID string) {
	out, err := c.games.GetRoom(ctx, &game.GetRoomInput{RoomID: roomID})
	if err != nil {
		c.log.Warn("failed to snapshot room for watchers",
			slog.String("room_id", roomID),
			slog.Any("error", err))
		return
	}

	c.hub.Publish(roomID, events.Snapshot{
		Room:    converter.RoomToAPI(out.Room),
		Players: converter.PlayersToAPI(out.Players),
	})
}

// renderError maps service reason codes to HTTP statuses
func (c *GameController) renderError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrRoomNotFound),
		errors.Is(err, game.ErrQuestionNotFound),
		errors.Is(err, game.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrRoomExists):
		status = http.StatusConflict
	case errors.Is(err, game.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
