package user

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"tastyshare/domain"
	"tastyshare/entities"
	"tastyshare/internal/utils/storage"
	"tastyshare/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error
		UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadImageResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// The profile carries the display name; create it alongside the account.
	profile := &entities.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
	}
	if err := s.userRepository.UpsertProfile(ctx, profile); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.userRepository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		UserID:     profile.UserID.String(),
		FullName:   profile.FullName,
		Hobbies:    profile.Hobbies,
		ProfilePic: profile.ProfilePic,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	profile := &entities.Profile{
		UserID:     userUUID,
		FullName:   req.FullName,
		Hobbies:    req.Hobbies,
		ProfilePic: req.ProfilePic,
	}
	return s.userRepository.UpsertProfile(ctx, profile)
}

// UploadProfileImage stores the picture and persists its URL on the
// profile. When the profile already carries an image the existing object
// is overwritten in place instead of accumulating a new one.
func (s *userService) UploadProfileImage(ctx context.Context, userID string, file *multipart.FileHeader) (domain.UploadImageResponse, error) {
	if file == nil {
		return domain.UploadImageResponse{}, domain.ErrFileNotFound
	}

	profile, err := s.userRepository.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UploadImageResponse{}, err
	}

	var objectKey string
	var uploadErr error
	if profile != nil && profile.ProfilePic != "" {
		existingKey := s.s3.GetObjectKeyFromLink(profile.ProfilePic)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, file, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(uploadFileName(file.Filename), file, "profile-images", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(uploadFileName(file.Filename), file, "profile-images", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.UploadImageResponse{}, uploadErr
	}

	url := s.s3.GetPublicLinkKey(objectKey)
	if profile != nil {
		profile.ProfilePic = url
		if err := s.userRepository.UpsertProfile(ctx, profile); err != nil {
			return domain.UploadImageResponse{}, err
		}
	}

	return domain.UploadImageResponse{URL: url}, nil
}

// uploadFileName derives a collision-resistant object name from the upload
// time and the original filename.
func uploadFileName(original string) string {
	base := original
	if idx := strings.LastIndex(original, "."); idx > 0 {
		base = original[:idx]
	}
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
