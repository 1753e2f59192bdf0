package model

import "net/http"

// BackendOutcome - сырой результат обмена с бэкендом сокращения до интерпретации.
type BackendOutcome struct {
	StatusCode int
	Body       string
}

// Success сообщает, что бэкенд ответил статусом 2xx.
func (o BackendOutcome) Success() bool {
	return o.StatusCode >= http.StatusOK && o.StatusCode < http.StatusMultipleChoices
}
