package controllers

import (
	"strconv"

	"github.com/BETACRD01/delibery-sub000/pkg/resp"
	"github.com/BETACRD01/delibery-sub000/services"
	"github.com/BETACRD01/delibery-sub000/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(svc *services.ChatService) *ChatController { return &ChatController{Svc: svc} }

// GET /chat/rooms
func (ch *ChatController) Rooms(c *gin.Context) {
	rooms, err := ch.Svc.GetRoomsByUser(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rooms})
}

// GET /chat/rooms/:id/messages
func (ch *ChatController) Messages(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	room, err := ch.Svc.GetRoomByID(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	ok, err := ch.Svc.CanAccessRoom(utils.CurrentUserID(c), room.OrderID)
	if err != nil {
		writeErr(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "no access")
		return
	}
	msgs, err := ch.Svc.GetMessages(room.ID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// POST /chat/rooms/:id/messages
func (ch *ChatController) Send(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	uid := utils.CurrentUserID(c)
	room, err := ch.Svc.GetRoomByID(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	ok, err := ch.Svc.CanAccessRoom(uid, room.OrderID)
	if err != nil {
		writeErr(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "no access")
		return
	}
	msg, err := ch.Svc.SendMessage(room.ID, uid, "text", req.Body)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, msg)
}
