package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/joaovmb/team-manager/repositories"
	"github.com/joaovmb/team-manager/storage"
)

// MaxAvatarSize is enforced before any storage call.
const MaxAvatarSize = 2 << 20 // 2 MiB

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, upload AvatarUpload) (string, error)
}

type UpdateProfileInput struct {
	DisplayName *string `json:"display_name"`
	TeamName    string  `json:"team_name" validate:"required"`
	MonthlyFee  float64 `json:"monthly_fee" validate:"gte=0"`
	DueDay      int     `json:"due_day" validate:"gte=1,lte=28"`
	Timezone    string  `json:"timezone" validate:"required"`
}

type AvatarUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	uploader    storage.FileUploader
	validate    *validator.Validate
}

func NewProfileService(profileRepo repositories.ProfileRepository, uploader storage.FileUploader) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		uploader:    uploader,
		validate:    validator.New(),
	}
}

// Get returns the account's singleton profile, creating it with defaults
// when an older account predates automatic creation at signup.
func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	profile = &models.Profile{
		UserID:     userID,
		TeamName:   models.DefaultTeamName,
		MonthlyFee: models.DefaultMonthlyFee,
		DueDay:     models.DefaultDueDay,
		Timezone:   models.DefaultTimezone,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*models.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.DisplayName = input.DisplayName
	profile.TeamName = input.TeamName
	profile.MonthlyFee = input.MonthlyFee
	profile.DueDay = input.DueDay
	profile.Timezone = input.Timezone

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// UploadAvatar checks the size ceiling and image MIME prefix before
// touching storage, uploads to the fixed per-account key and persists the
// public URL on the profile.
func (s *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, upload AvatarUpload) (string, error) {
	if upload.Size > MaxAvatarSize {
		return "", ErrAvatarTooLarge
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", ErrAvatarNotImage
	}

	ext := strings.TrimPrefix(path.Ext(upload.FileName), ".")
	if ext == "" {
		ext = "png"
	}
	key := fmt.Sprintf("%s/avatar.%s", userID, ext)

	result, err := s.uploader.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	profile.AvatarURL = &result.Location
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}
	return result.Location, nil
}
