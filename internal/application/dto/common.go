package dto

// TimeFormat formato de fecha-hora en respuestas (hora local del negocio).
const TimeFormat = "2006-01-02 15:04:05"

// DateFormat formato de fecha calendario en rangos de reporte.
const DateFormat = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeQuery rango de fechas calendario inclusivo para listados y reportes.
// Formato: YYYY-MM-DD. Se compara contra la fecha local de cada registro.
type DateRangeQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}
