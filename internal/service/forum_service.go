package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/metrics"
	"coboard-api/internal/repository"
	"coboard-api/internal/response"
	"coboard-api/internal/util"
)

// defaultWallpaper is the forum background color used when none is given
const defaultWallpaper = "#006b62"

// ForumService defines the interface for forum business logic
type ForumService interface {
	GetBoard(ctx context.Context, board string) (*dto.BoardResponse, error)
	CreateForum(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error)
	GetForumDetail(ctx context.Context, board, slug string) (*dto.ForumDetailResponse, error)
	UpdateForum(ctx context.Context, board, slug string, req *dto.CreateForumRequest) (*dto.ForumDetailResponse, error)
	DeleteForum(ctx context.Context, sid string, forumID uint) error
	CreateAccess(ctx context.Context, slug, userID string) (*dto.AccessResponse, error)
	DeleteAllAccess(ctx context.Context, slug string) (int64, error)
}

// forumServiceImpl is the implementation of ForumService
type forumServiceImpl struct {
	forumRepo    repository.ForumRepository
	topicRepo    repository.TopicRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	tagRepo      repository.TagRepository
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
	accessRepo   repository.AccessRepository
	fileRepo     repository.FileRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewForumService creates a new instance of ForumService
func NewForumService(
	forumRepo repository.ForumRepository,
	topicRepo repository.TopicRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	bookmarkRepo repository.BookmarkRepository,
	accessRepo repository.AccessRepository,
	fileRepo repository.FileRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ForumService {
	return &forumServiceImpl{
		forumRepo:    forumRepo,
		topicRepo:    topicRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		accessRepo:   accessRepo,
		fileRepo:     fileRepo,
		metrics:      m,
		logger:       logger,
	}
}

// GetBoard lists a board's forums newest first with their contributor
// counts, plus the board's tags, the forums' tag links and access grants.
func (s *forumServiceImpl) GetBoard(ctx context.Context, board string) (*dto.BoardResponse, error) {
	forums, err := s.forumRepo.FindByBoard(ctx, board)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forums", err.Error())
	}

	forumData := make([]dto.ForumWithContributors, 0, len(forums))
	forumIDs := make([]uint, 0, len(forums))
	for i := range forums {
		forum := &forums[i]
		forumIDs = append(forumIDs, forum.ForumID)

		contributors, err := s.countContributors(ctx, forum)
		if err != nil {
			return nil, err
		}

		forumData = append(forumData, dto.ForumWithContributors{
			ForumResponse:     dto.NewForumResponse(forum),
			TotalContributors: contributors,
		})
	}

	tags, err := s.tagRepo.FindByBoard(ctx, board)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tags", err.Error())
	}

	links, err := s.tagRepo.FindLinksByForumIDs(ctx, forumIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tag links", err.Error())
	}

	grants, err := s.accessRepo.FindByForumIDs(ctx, forumIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch access grants", err.Error())
	}

	return &dto.BoardResponse{
		Forums:   forumData,
		Tags:     dto.NewTagResponses(tags),
		ForumTag: dto.NewForumTagResponses(links),
		Access:   dto.NewAccessResponses(grants),
	}, nil
}

// countContributors walks a forum's topics, posts and comments and counts
// the distinct users who wrote any of them, excluding the forum creator.
func (s *forumServiceImpl) countContributors(ctx context.Context, forum *domain.Forum) (int, error) {
	topics, err := s.topicRepo.FindByForumID(ctx, forum.ForumID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch topics", err.Error())
	}

	contributors := make(map[string]struct{})
	for i := range topics {
		posts, err := s.postRepo.FindByTopicID(ctx, topics[i].TopicID)
		if err != nil {
			return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
		}

		for j := range posts {
			contributors[posts[j].CreatorKey()] = struct{}{}

			comments, err := s.commentRepo.FindByPostID(ctx, posts[j].PostID)
			if err != nil {
				return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
			}
			for k := range comments {
				contributors[comments[k].CreatorKey()] = struct{}{}
			}
		}
	}

	delete(contributors, forum.CreatorID)
	return len(contributors), nil
}

// CreateForum creates a forum on a board together with its tag links in a
// single transaction. Referencing a missing tag fails the whole creation.
func (s *forumServiceImpl) CreateForum(ctx context.Context, board string, req *dto.CreateForumRequest) (*dto.ForumResponse, error) {
	if board != req.Board {
		return nil, response.NewAppError(response.ErrCodeValidation, "Board in URL doesn't match board in forum data", "")
	}

	icon, err := decodeImageField(req.Icon)
	if err != nil {
		return nil, err
	}

	createdTime := time.Now().UTC()
	if req.CreatedTime != nil && *req.CreatedTime != "" {
		parsed, err := dto.ParseDate(*req.CreatedTime)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid created_time", err.Error())
		}
		createdTime = parsed
	}

	forum := &domain.Forum{
		ForumName:   req.ForumName,
		CreatorID:   req.CreatorID,
		CreatedTime: createdTime,
		Icon:        icon,
		Wallpaper:   defaultWallpaper,
		Board:       req.Board,
		LastUpdated: time.Now().UTC(),
	}
	if req.Description != nil {
		forum.Description = *req.Description
	}
	if req.Wallpaper != nil && *req.Wallpaper != "" {
		forum.Wallpaper = *req.Wallpaper
	}
	if req.Font != nil {
		forum.Font = *req.Font
	}
	if req.SortBy != nil {
		forum.SortBy = *req.SortBy
	}
	if req.Slug != nil {
		forum.Slug = *req.Slug
	}

	tagIDs := make([]uint, 0, len(req.Tags))
	for _, ref := range req.Tags {
		tagIDs = append(tagIDs, ref.TagID)
	}

	if err := s.forumRepo.CreateWithTags(ctx, forum, tagIDs); err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, response.NewAppError(response.ErrCodeValidation, "Tag does not exist", "")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Forum name or slug already exists", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create forum", err.Error())
	}

	s.metrics.IncrementForumCreated()
	s.logger.Info("Forum created",
		zap.Uint("forum_id", forum.ForumID),
		zap.String("board", forum.Board),
		zap.String("creator_id", forum.CreatorID),
	)

	resp := dto.NewForumResponse(forum)
	return &resp, nil
}

// GetForumDetail returns a forum with its topics, posts, comments, files,
// tags, bookmarks and access grants.
func (s *forumServiceImpl) GetForumDetail(ctx context.Context, board, slug string) (*dto.ForumDetailResponse, error) {
	forum, err := s.forumRepo.FindByBoardSlug(ctx, board, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	return s.buildForumDetail(ctx, forum)
}

// DeleteForum deletes a forum and its links, bookmarks and access grants.
// Only the creator may delete a forum. Topics, posts, comments and files
// are orphaned rather than removed.
func (s *forumServiceImpl) DeleteForum(ctx context.Context, sid string, forumID uint) error {
	forum, err := s.forumRepo.FindByID(ctx, forumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	if forum.CreatorID != sid {
		return response.NewAppError(response.ErrCodeForbidden, "You do not have permission to delete this forum", "")
	}

	if err := s.forumRepo.DeleteCascade(ctx, forumID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete forum", err.Error())
	}

	s.logger.Info("Forum deleted",
		zap.Uint("forum_id", forumID),
		zap.String("creator_id", sid),
	)
	return nil
}

// CreateAccess grants a registered user access to a forum
func (s *forumServiceImpl) CreateAccess(ctx context.Context, slug, userID string) (*dto.AccessResponse, error) {
	forum, err := s.forumRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	user, err := s.userRepo.FindSEByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	grant := &domain.Access{ForumID: forum.ForumID, UserID: user.SID}
	if err := s.accessRepo.Create(ctx, grant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create access", err.Error())
	}

	return &dto.AccessResponse{ForumID: grant.ForumID, UserID: grant.UserID}, nil
}

// DeleteAllAccess removes every access grant on a forum and reports how
// many were removed
func (s *forumServiceImpl) DeleteAllAccess(ctx context.Context, slug string) (int64, error) {
	forum, err := s.forumRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	removed, err := s.accessRepo.DeleteAllForForum(ctx, forum.ForumID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to delete access", err.Error())
	}

	return removed, nil
}

// decodeImageField decodes an optional base64 image, mapping decode and
// size failures to validation errors
func decodeImageField(encoded *string) ([]byte, error) {
	if encoded == nil {
		return nil, nil
	}
	data, err := util.DecodeImage(*encoded)
	if err != nil {
		if errors.Is(err, util.ErrImageTooLarge) {
			return nil, response.NewAppError(response.ErrCodeValidation, "Icon file too large", "")
		}
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid base64 for icon", err.Error())
	}
	return data, nil
}
