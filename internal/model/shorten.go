package model

// ShortenRequest представляет структуру JSON-запроса на сокращение URL.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse представляет успешный ответ шлюза.
type ShortenResponse struct {
	ShortURL string `json:"shortUrl"`
}

// ErrorResponse представляет нормализованную ошибку шлюза.
type ErrorResponse struct {
	Error string `json:"error"`
}
