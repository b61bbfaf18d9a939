package model

type Profile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type SettingsItem struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Toggle      bool   `json:"toggle,omitempty"`
}

type Settings struct {
	Profile Profile        `json:"profile"`
	Menu    []SettingsItem `json:"menu"`
	AppInfo []string       `json:"appInfo"`
}
