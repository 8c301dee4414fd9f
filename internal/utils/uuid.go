package utils

import "github.com/google/uuid"

// UUIDService выдаёт идентификаторы комнат и участников.
type UUIDService struct{}

func (UUIDService) New() string {
	return uuid.NewString()
}
