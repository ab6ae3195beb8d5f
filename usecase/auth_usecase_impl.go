package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realtime-chat-backend/apperr"
	"realtime-chat-backend/dto/req"
	"realtime-chat-backend/dto/res"
	"realtime-chat-backend/entity"
	"realtime-chat-backend/repository"
	"realtime-chat-backend/security"
	"realtime-chat-backend/storage"
	"realtime-chat-backend/util"
)

type AuthUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
	Uploader storage.Uploader
}

func NewAuthUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT, uploader storage.Uploader) AuthUsecase {
	return &AuthUsecaseImpl{
		UserRepository: userRepository,
		Validate:       validate,
		DB:             DB,
		Logger:         logger,
		JWT:            JWT,
		Uploader:       uploader,
	}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest, profilePic []byte, picContentType string) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, apperr.Conflict(err.Error())
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to look up user: %v", err)
		return res.UserResponse{}, apperr.Internal(err)
	}
	if existing != nil {
		return res.UserResponse{}, apperr.Conflict("User Already exist with this email")
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.UserResponse{}, apperr.Internal(err)
	}

	picURL := util.RandomProfilePic()
	if len(profilePic) > 0 {
		picURL, err = uc.Uploader.Upload(ctx, profilePic, picContentType)
		if err != nil {
			uc.Logger.WithError(err).Errorf("Failed to upload profile picture: %v", err)
			return res.UserResponse{}, apperr.UploadFailure(err)
		}
	}

	newUser := &entity.ChatUser{
		Email:      request.Email,
		Username:   util.RandomDisplayName(request.Username),
		Password:   hashPassword,
		ProfilePic: picURL,
	}

	if err := uc.UserRepository.Save(ctx, uc.DB, newUser); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user: %v", err)
		return res.UserResponse{}, apperr.Internal(err)
	}

	uc.Logger.Infof("Success register user with email: %s", newUser.Email)
	return toUserResponse(newUser), nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.LoginResponse{}, apperr.Conflict(err.Error())
	}

	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to find user: %v", err)
		return res.LoginResponse{}, apperr.Internal(err)
	}
	if user == nil {
		return res.LoginResponse{}, apperr.NotFound("USER NOT FOUND!!")
	}

	if !util.ComparePassword(user.Password, request.Password) {
		return res.LoginResponse{}, apperr.Unauthorized("Password does not match!!")
	}

	token, err := uc.JWT.GenerateToken(user)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token: %v", err)
		return res.LoginResponse{}, apperr.Internal(err)
	}

	return res.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(user *entity.ChatUser) res.UserResponse {
	return res.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		ProfilePic: user.ProfilePic,
		Background: user.Background,
	}
}
