package model

import "time"

// LocalSender is the display name of the single simulated local user.
const LocalSender = "You"

type ChatRoom struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Unread      int    `json:"unread"`
	Icon        string `json:"icon"`
	Members     int    `json:"members"`
}

type Message struct {
	ID        int       `json:"id"`
	RoomID    int       `json:"roomId"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Time      string    `json:"time"`
	IsMine    bool      `json:"isMine"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

type SelectRoomRequest struct {
	RoomID int `json:"room_id" validate:"required,gt=0"`
}

// ChatView is what the chat screen renders for the selected room.
type ChatView struct {
	Room     ChatRoom  `json:"room"`
	Messages []Message `json:"messages"`
}
