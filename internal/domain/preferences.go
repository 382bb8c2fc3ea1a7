package domain

type Language string

const (
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Preferences struct {
	Language Language `json:"language" validate:"omitempty,oneof=en ja"`
	Theme    Theme    `json:"theme" validate:"omitempty,oneof=light dark"`
}

// User is the caller identity. Authentication is mocked; the storefront only
// needs a stable id to scope favorites, bookings and preferences.
type User struct {
	ID   string
	Name string
}

var GuestUser = User{ID: "guest", Name: "Guest User"}
