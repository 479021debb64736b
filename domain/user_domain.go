package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessGetMe            = "success get current user"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessUpdateProfile    = "profile saved successfully"
	MessageSuccessUploadProfilePic = "profile image uploaded successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetMe            = "failed to get current user"
	MessageFailedGetProfile       = "failed to get profile"
	MessageFailedUpdateProfile    = "failed to save profile"
	MessageFailedUploadProfilePic = "failed to upload profile image"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrFileNotFound       = errors.New("no file uploaded")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		FullName string `json:"full_name" validate:"required"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		FullName   string `json:"full_name" validate:"required"`
		Hobbies    string `json:"hobbies"`
		ProfilePic string `json:"profile_pic,omitempty"`
	}

	ProfileResponse struct {
		UserID     string `json:"user_id"`
		FullName   string `json:"full_name"`
		Hobbies    string `json:"hobbies"`
		ProfilePic string `json:"profile_pic,omitempty"`
	}

	UploadImageResponse struct {
		URL string `json:"url"`
	}

	// PublicProfileResponse backs the public user page: the profile plus
	// the user's full recipe feed, newest first.
	PublicProfileResponse struct {
		Profile ProfileResponse    `json:"profile"`
		Recipes []PublicRecipePost `json:"recipes"`
	}

	PublicRecipePost struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
