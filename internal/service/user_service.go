package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/repository"
	"coboard-api/internal/response"
	"coboard-api/internal/util"
)

// UserService defines the interface for user business logic. Lookups span
// both user tables; a profile or update resolves to whichever table the ID
// matches, registered users first.
type UserService interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AnonymousUserResponse, error)
	GetUserProfile(ctx context.Context, id string) (*dto.SEUserProfileResponse, *dto.AnonymousUserProfileResponse, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.SEUserResponse, *dto.AnonymousUserResponse, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo     repository.UserRepository
	forumRepo    repository.ForumRepository
	bookmarkRepo repository.BookmarkRepository
	fileRepo     repository.FileRepository
	logger       *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	forumRepo repository.ForumRepository,
	bookmarkRepo repository.BookmarkRepository,
	fileRepo repository.FileRepository,
	logger *zap.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:     userRepo,
		forumRepo:    forumRepo,
		bookmarkRepo: bookmarkRepo,
		fileRepo:     fileRepo,
		logger:       logger,
	}
}

// ListUsers returns every user of both kinds
func (s *userServiceImpl) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	seUsers, err := s.userRepo.FindAllSE(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}

	anonUsers, err := s.userRepo.FindAllAnonymous(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch users", err.Error())
	}

	resp := &dto.UserListResponse{
		SE:        make([]dto.SEUserResponse, 0, len(seUsers)),
		Anonymous: make([]dto.AnonymousUserResponse, 0, len(anonUsers)),
	}
	for i := range seUsers {
		resp.SE = append(resp.SE, dto.NewSEUserResponse(&seUsers[i]))
	}
	for i := range anonUsers {
		resp.Anonymous = append(resp.Anonymous, dto.NewAnonymousUserResponse(&anonUsers[i]))
	}

	return resp, nil
}

// Signup registers a new anonymous user
func (s *userServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AnonymousUserResponse, error) {
	if _, err := s.userRepo.FindAnonymousByID(ctx, req.AID); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User already exists", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check user", err.Error())
	}

	user := &domain.AnonymousUser{
		AID:  req.AID,
		APW:  req.APW,
		Mail: req.Mail,
	}
	if err := s.userRepo.CreateAnonymous(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("Anonymous user signed up", zap.String("aid", user.AID))

	resp := dto.NewAnonymousUserResponse(user)
	return &resp, nil
}

// GetUserProfile returns a user's profile with bookmarked forums, created
// forums (registered users only) and uploaded files. Exactly one of the two
// returned profiles is non-nil on success.
func (s *userServiceImpl) GetUserProfile(ctx context.Context, id string) (*dto.SEUserProfileResponse, *dto.AnonymousUserProfileResponse, error) {
	seUser, err := s.userRepo.FindSEByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if seUser != nil {
		bookmarked, err := s.bookmarkRepo.FindForumsBookmarkedBySE(ctx, seUser.SID)
		if err != nil {
			return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch bookmarks", err.Error())
		}

		created, err := s.forumRepo.FindByCreator(ctx, seUser.SID)
		if err != nil {
			return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forums", err.Error())
		}

		files, err := s.fileRepo.FindBySOwner(ctx, seUser.SID)
		if err != nil {
			return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch files", err.Error())
		}

		return &dto.SEUserProfileResponse{
			SEUserResponse: dto.NewSEUserResponse(seUser),
			Bookmarked:     dto.NewForumResponses(bookmarked),
			Created:        dto.NewForumResponses(created),
			Files:          dto.NewFileResponses(files),
		}, nil, nil
	}

	anonUser, err := s.userRepo.FindAnonymousByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	bookmarked, err := s.bookmarkRepo.FindForumsBookmarkedByAnonymous(ctx, anonUser.AID)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch bookmarks", err.Error())
	}

	files, err := s.fileRepo.FindByAOwner(ctx, anonUser.AID)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch files", err.Error())
	}

	return nil, &dto.AnonymousUserProfileResponse{
		AnonymousUserResponse: dto.NewAnonymousUserResponse(anonUser),
		Bookmarked:            dto.NewForumResponses(bookmarked),
		Files:                 dto.NewFileResponses(files),
	}, nil
}

// UpdateUser updates a user of either kind. Registered users can change
// their username, password and profile image. For anonymous users the
// username field replaces the account ID itself, which re-keys the row.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.SEUserResponse, *dto.AnonymousUserResponse, error) {
	profile, err := decodeProfileImage(req.ProfileImage)
	if err != nil {
		return nil, nil, err
	}

	seUser, err := s.userRepo.FindSEByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if seUser != nil {
		if profile != nil {
			seUser.SProfile = profile
		}
		if req.Username != "" {
			seUser.Username = req.Username
		}
		if req.Password != "" {
			seUser.SPW = req.Password
		}

		if err := s.userRepo.UpdateSE(ctx, seUser); err != nil {
			return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
		}

		s.logger.Info("User updated", zap.String("sid", seUser.SID))

		resp := dto.NewSEUserResponse(seUser)
		return &resp, nil, nil
	}

	anonUser, err := s.userRepo.FindAnonymousByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if profile != nil {
		anonUser.AProfile = profile
	}
	if req.Username != "" {
		anonUser.AID = req.Username
	}
	if req.Password != "" {
		anonUser.APW = req.Password
	}

	if err := s.userRepo.UpdateAnonymous(ctx, id, anonUser); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	s.logger.Info("User updated", zap.String("aid", anonUser.AID))

	resp := dto.NewAnonymousUserResponse(anonUser)
	return nil, &resp, nil
}

// decodeProfileImage decodes an optional base64 profile image, mapping
// failures to validation errors
func decodeProfileImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	data, err := util.DecodeImage(encoded)
	if err != nil {
		if errors.Is(err, util.ErrImageTooLarge) {
			return nil, response.NewAppError(response.ErrCodeValidation, "Profile image too large", "")
		}
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid base64 for profile image", err.Error())
	}
	return data, nil
}
