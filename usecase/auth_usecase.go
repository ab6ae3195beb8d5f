package usecase

import (
	"context"

	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest, profilePic []byte, picContentType string) (res.UserResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
}
