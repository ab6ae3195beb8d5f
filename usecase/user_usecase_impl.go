package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/repository"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*gorm.DB
	*logrus.Logger
}

func NewUserUsecase(userRepository *repository.UserRepository, DB *gorm.DB, logger *logrus.Logger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, DB: DB, Logger: logger}
}

func (uc *UserUsecaseImpl) GetUserByEmail(ctx context.Context, email string) (res.UserResponse, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, email)
	if err != nil {
		uc.Logger.WithError(err).Errorln("Failed to get user by email")
		return res.UserResponse{}, apperr.Internal(err)
	}
	if user == nil {
		return res.UserResponse{}, apperr.NotFound("User not Exist with this email..")
	}
	return toUserResponse(user), nil
}

func (uc *UserUsecaseImpl) GetAllUsers(ctx context.Context) ([]res.UserResponse, error) {
	var users []entity.ChatUser
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &users); err != nil {
		uc.Logger.WithError(err).Errorln("Failed to get all users")
		return nil, apperr.Internal(err)
	}

	responses := make([]res.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}
