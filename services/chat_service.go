package services

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
)

type ChatService struct {
	repo *repository.ChatRepository
}

func NewChatService(repo *repository.ChatRepository) *ChatService {
	return &ChatService{repo}
}

func (s *ChatService) EnsureRoom(orderID uint) (*entity.ChatRoom, error) {
	return s.repo.EnsureRoom(orderID)
}

func (s *ChatService) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	return s.repo.GetRoomByID(roomID)
}

func (s *ChatService) CanAccessRoom(userID, orderID uint) (bool, error) {
	return s.repo.CanAccess(userID, orderID)
}

func (s *ChatService) GetRoomsByUser(userID uint) ([]entity.ChatRoom, error) {
	return s.repo.FindRoomsByUser(userID)
}

func (s *ChatService) GetMessages(roomID uint) ([]entity.Message, error) {
	return s.repo.FindMessagesByRoom(roomID)
}

func (s *ChatService) SendMessage(roomID, senderID uint, kind, body string) (*entity.Message, error) {
	if kind == "" {
		kind = "text"
	}
	msg := &entity.Message{
		Body:     body,
		Kind:     kind,
		RoomID:   roomID,
		SenderID: senderID,
	}
	err := s.repo.CreateMessage(msg)
	return msg, err
}
