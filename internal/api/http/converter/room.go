package converter

import "github.com/alimhan/buzzroom/internal/models"

type RoomAPI struct {
	ID                string     `json:"id"`
	RoomNumber        string     `json:"roomNumber"`
	Host              *PlayerAPI `json:"host,omitempty"`
	CurrentQuestionID string     `json:"currentQuestionId"`
	BuzzingOpen       bool       `json:"buzzingOpen"`
	FirstBuzzer       string     `json:"firstBuzzer,omitempty"`
	BuzzState         string     `json:"buzzState"`
}

type PlayerAPI struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Score  int    `json:"score"`
}

// RoomToAPI maps a room model to its API shape. The room password never
// leaves the server.
func RoomToAPI(room *models.Room) *RoomAPI {
	if room == nil {
		return nil
	}
	return &RoomAPI{
		ID:                room.ID,
		RoomNumber:        room.RoomNumber,
		Host:              PlayerToAPI(room.Host),
		CurrentQuestionID: room.CurrentQuestionID,
		BuzzingOpen:       room.BuzzingOpen,
		FirstBuzzer:       room.FirstBuzzer,
		BuzzState:         string(room.BuzzState()),
	}
}

// PlayerToAPI maps a player model to its API shape
func PlayerToAPI(player *models.Player) *PlayerAPI {
	if player == nil {
		return nil
	}
	return &PlayerAPI{
		ID:     player.ID,
		Name:   player.Name,
		Avatar: player.Avatar,
		Score:  player.Score,
	}
}

// PlayersToAPI maps a roster, preserving order
func PlayersToAPI(players []*models.Player) []*PlayerAPI {
	out := make([]*PlayerAPI, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerToAPI(p))
	}
	return out
}
