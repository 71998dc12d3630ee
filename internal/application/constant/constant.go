package constant

// Ключи атрибутов slog
const (
	Error    = "error"
	RoomID   = "room_id"
	ClientID = "client_id"
	Provider = "provider"
)
