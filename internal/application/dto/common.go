package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeRequest filtros de rango para listados (RFC 3339; vacío = sin límite).
type DateRangeRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}
