package dto

type Ping struct {
	Message string `json:"message"`
}
