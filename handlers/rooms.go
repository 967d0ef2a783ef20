package handlers

import (
	"context"
	"net/http"
	"strconv"

	"palmcove/models"
	"palmcove/utils"

	"github.com/gin-gonic/gin"
)

const roomNotFound = "Room not found"

// RoomCatalog is the read side of the room catalog.
type RoomCatalog interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id int) (*models.Room, error)
}

type RoomHandler struct {
	Catalog RoomCatalog
}

func NewRoomHandler(catalog RoomCatalog) *RoomHandler {
	return &RoomHandler{Catalog: catalog}
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Catalog.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err, roomNotFound)
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id. Non-numeric ids are reported as not found.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONErrorWithCode(c, http.StatusNotFound, roomNotFound, "", "not_found")
		return
	}

	room, err := h.Catalog.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, roomNotFound)
		return
	}
	c.JSON(http.StatusOK, room)
}
