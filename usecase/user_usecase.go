package usecase

import (
	"context"

	"realtime-chat-backend/dto/res"
)

type UserUsecase interface {
	GetUserByEmail(ctx context.Context, email string) (res.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]res.UserResponse, error)
}
