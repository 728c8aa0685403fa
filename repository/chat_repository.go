package repository

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// EnsureRoom provisions the room for an order if it does not exist yet. The
// unique index on order_id keeps this idempotent under retries.
func (r *ChatRepository) EnsureRoom(orderID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.Where(entity.ChatRoom{OrderID: orderID}).FirstOrCreate(&room).Error
	return &room, err
}

func (r *ChatRepository) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindRoomsByUser lists rooms for orders the user participates in, as client
// or as the assigned courier.
func (r *ChatRepository) FindRoomsByUser(userID uint) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.db.
		Preload("Order").
		Where("order_id IN (?)",
			r.db.Table("orders").Select("id").
				Where("client_id = ? OR courier_id IN (?)", userID,
					r.db.Table("couriers").Select("id").Where("user_id = ?", userID))).
		Find(&rooms).Error
	return rooms, err
}

// CanAccess reports whether the user participates in the room's order, as
// its client or its assigned courier.
func (r *ChatRepository) CanAccess(userID, orderID uint) (bool, error) {
	var cnt int64
	err := r.db.Table("orders").
		Where("id = ? AND (client_id = ? OR courier_id IN (?))", orderID, userID,
			r.db.Table("couriers").Select("id").Where("user_id = ?", userID)).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ChatRepository) FindMessagesByRoom(roomID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.db.
		Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}
