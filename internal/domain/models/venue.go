package models

// Значения по умолчанию для полей, которых нет в ответе провайдера
const (
	UnknownName = "Unknown"
	NoAddress   = "No address"
	NoCategory  = "Uncategorized"
)

// Venue представляет найденное место рядом с участниками
type Venue struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Category string `json:"category"`
}

// Key is the deduplication identity of a venue.
func (v Venue) Key() [2]string {
	return [2]string{v.Name, v.Address}
}
