package dto

// Значения по умолчанию для поиска мест (совместимы с фронтом)
const (
	DefaultQuery        = "hospital"
	DefaultRadiusMeters = 1000
)

type SearchVenuesRequest struct {
	Query  string `json:"query"`
	Radius int    `json:"radius"`

	// Locations - пары [lat, lon]; всё остальное молча пропускается
	Locations [][]float64 `json:"locations"`
}
