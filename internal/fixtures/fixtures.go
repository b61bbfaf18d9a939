// Package fixtures holds the hard-coded sample records every screen reads.
// It is the single read-only data module: callers always receive copies.
package fixtures

import (
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/connectmate/connectmate_api/util"
)

var activities = []model.Activity{
	{
		ID:              "1",
		Title:           "Weekly Soccer Match",
		Location:        "Seoul National Park",
		Time:            "Today, 3:00 PM",
		Description:     "Join us for a friendly soccer match!",
		Participants:    5,
		MaxParticipants: 10,
		Category:        "Sports",
		Lat:             util.Float64Ptr(37.5665),
		Lng:             util.Float64Ptr(126.9780),
		Color:           "#4CAF50",
		Icon:            "⚽",
	},
	{
		ID:              "2",
		Title:           "Study Group - Java",
		Location:        "Gangnam Library",
		Time:            "Tomorrow, 2:00 PM",
		Description:     "Let's study Java together",
		Participants:    3,
		MaxParticipants: 8,
		Category:        "Study",
		Lat:             util.Float64Ptr(37.5700),
		Lng:             util.Float64Ptr(126.9850),
		Color:           "#2196F3",
		Icon:            "📚",
	},
	{
		ID:              "3",
		Title:           "Coffee Meetup",
		Location:        "Hongdae Cafe",
		Time:            "Saturday, 4:00 PM",
		Description:     "Casual coffee and chat",
		Participants:    6,
		MaxParticipants: 12,
		Category:        "Social",
		Lat:             util.Float64Ptr(37.5550),
		Lng:             util.Float64Ptr(126.9200),
		Color:           "#FF9800",
		Icon:            "☕",
	},
	{
		ID:              "4",
		Title:           "Hiking Adventure",
		Location:        "Bukhansan",
		Time:            "Sunday, 7:00 AM",
		Description:     "Morning hike to enjoy nature",
		Participants:    8,
		MaxParticipants: 15,
		Category:        "Sports",
		Icon:            "🥾",
	},
	{
		ID:              "5",
		Title:           "Movie Night",
		Location:        "CGV Gangnam",
		Time:            "Friday, 7:30 PM",
		Description:     "Watch the latest blockbuster together",
		Participants:    4,
		MaxParticipants: 10,
		Category:        "Entertainment",
		Icon:            "🎬",
	},
}

var chatRooms = []model.ChatRoom{
	{ID: 1, Name: "Weekly Soccer Match", LastMessage: "Thanks! See you at 3 PM", Time: "10:40 AM", Unread: 0, Icon: "⚽", Members: 4},
	{ID: 2, Name: "Study Group - Java", LastMessage: "Don't forget to bring your laptops", Time: "Yesterday", Unread: 3, Icon: "📚", Members: 4},
	{ID: 3, Name: "Coffee Meetup", LastMessage: "The cafe looks nice!", Time: "Yesterday", Unread: 1, Icon: "☕", Members: 4},
}

// seedTime stamps fixture messages, which only carry a display time.
var seedTime = time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

var seedMessages = map[int][]model.Message{
	1: {
		{ID: 1, RoomID: 1, Sender: "John", Text: "Hey everyone! Ready for soccer today?", Time: "10:30 AM"},
		{ID: 2, RoomID: 1, Sender: model.LocalSender, Text: "Yes! Can't wait!", Time: "10:32 AM", IsMine: true},
		{ID: 3, RoomID: 1, Sender: "Sarah", Text: "I'll bring extra water bottles", Time: "10:35 AM"},
		{ID: 4, RoomID: 1, Sender: "Mike", Text: "Thanks! See you at 3 PM", Time: "10:40 AM"},
	},
}

var profile = model.Profile{
	Name:     "Demo User",
	Username: "@demouser",
	Email:    "demo@connectmate.com",
	Avatar:   "👤",
}

var menu = []model.SettingsItem{
	{ID: 1, Icon: "👤", Title: "Account", Description: "Manage your account settings"},
	{ID: 2, Icon: "🔔", Title: "Notifications", Description: "Configure notification preferences"},
	{ID: 3, Icon: "🔒", Title: "Privacy", Description: "Control your privacy settings"},
	{ID: 4, Icon: "🌐", Title: "Language", Description: "English"},
	{ID: 5, Icon: "🌙", Title: "Dark Mode", Description: "Enable dark mode", Toggle: true},
	{ID: 6, Icon: "❓", Title: "Help & Support", Description: "Get help or contact support"},
	{ID: 7, Icon: "ℹ️", Title: "About", Description: "App version 1.0.0"},
}

var appInfo = []string{
	"ConnectMate Web Simulator",
	"Version 1.0.0 (Demo)",
	"© 2025 ConnectMate. All rights reserved.",
}

// Activities returns every sample activity in display order.
func Activities() []model.Activity {
	return model.CloneActivities(activities)
}

// MapActivities returns the activities that carry coordinates, in display order.
func MapActivities() []model.Activity {
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if a.HasCoordinates() {
			out = append(out, a.Clone())
		}
	}
	return out
}

func ChatRooms() []model.ChatRoom {
	out := make([]model.ChatRoom, len(chatRooms))
	copy(out, chatRooms)
	return out
}

// SeedMessages returns the fixture conversation of a room; nil when it has none.
func SeedMessages(roomID int) []model.Message {
	seed, ok := seedMessages[roomID]
	if !ok {
		return nil
	}
	out := make([]model.Message, len(seed))
	copy(out, seed)
	for i := range out {
		out[i].CreatedAt = seedTime
	}
	return out
}

func Settings() model.Settings {
	m := make([]model.SettingsItem, len(menu))
	copy(m, menu)
	info := make([]string, len(appInfo))
	copy(info, appInfo)
	return model.Settings{Profile: profile, Menu: m, AppInfo: info}
}

func Profile() model.Profile {
	return profile
}
