package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/metrics"
	"coboard-api/internal/repository"
	"coboard-api/internal/response"
)

// PostService defines the interface for topic, post, comment and like logic
type PostService interface {
	CreateTopic(ctx context.Context, board, slug string, req *dto.CreateTopicRequest) (*dto.TopicResponse, error)
	CreatePost(ctx context.Context, board, slug string, topicID uint, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	AddComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateLike(ctx context.Context, req *dto.UpdateLikeRequest) (*dto.LikeResponse, error)
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	forumRepo   repository.ForumRepository
	topicRepo   repository.TopicRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(
	forumRepo repository.ForumRepository,
	topicRepo repository.TopicRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) PostService {
	return &postServiceImpl{
		forumRepo:   forumRepo,
		topicRepo:   topicRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		metrics:     m,
		logger:      logger,
	}
}

// findForum resolves a forum by board and slug, mapping missing rows to a
// not-found error
func (s *postServiceImpl) findForum(ctx context.Context, board, slug string) (*domain.Forum, error) {
	forum, err := s.forumRepo.FindByBoardSlug(ctx, board, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}
	return forum, nil
}

// CreateTopic opens a topic in a forum. The forum's last_updated is
// refreshed in the same transaction.
func (s *postServiceImpl) CreateTopic(ctx context.Context, board, slug string, req *dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	forum, err := s.findForum(ctx, board, slug)
	if err != nil {
		return nil, err
	}

	publish, err := dto.ParseDatePtr(req.Publish)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid publish date", err.Error())
	}
	expired, err := dto.ParseDatePtr(req.Expired)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid expired date", err.Error())
	}

	topic := &domain.Topic{
		Text:    req.Text,
		Publish: publish,
		Expired: expired,
	}

	if err := s.topicRepo.CreateInForum(ctx, forum.ForumID, topic); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create topic", err.Error())
	}

	s.logger.Info("Topic created",
		zap.Uint("topic_id", topic.TopicID),
		zap.Uint("forum_id", forum.ForumID),
	)

	resp := dto.NewTopicResponse(topic)
	return &resp, nil
}

// CreatePost adds a post to a topic. Exactly one creator of either user
// kind must be given.
func (s *postServiceImpl) CreatePost(ctx context.Context, board, slug string, topicID uint, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	forum, err := s.findForum(ctx, board, slug)
	if err != nil {
		return nil, err
	}

	topic, err := s.topicRepo.FindByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Topic not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch topic", err.Error())
	}

	identity, err := domain.NewIdentity(req.SPostCreator, req.APostCreator)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Exactly one creator must be set", err.Error())
	}

	pic, err := decodeImageField(req.Pic)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		PostHead: req.PostHead,
		Pic:      pic,
	}
	if req.PostBody != nil {
		post.PostBody = *req.PostBody
	}
	if req.Heart != nil {
		post.Heart = *req.Heart
	}
	post.SetCreator(identity)

	if err := s.postRepo.CreateInTopic(ctx, forum.ForumID, topic.TopicID, post); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create post", err.Error())
	}

	s.metrics.IncrementPostCreated()
	s.logger.Info("Post created",
		zap.Uint("post_id", post.PostID),
		zap.Uint("topic_id", topic.TopicID),
		zap.String("creator", identity.String()),
	)

	resp := dto.NewPostResponse(post)
	return &resp, nil
}

// AddComment attaches a comment to a post. Exactly one creator of either
// user kind must be given. The post is the only anchor: a post whose forum
// is gone still accepts comments.
func (s *postServiceImpl) AddComment(ctx context.Context, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Post not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch post", err.Error())
	}

	identity, err := domain.NewIdentity(req.SCommentCreator, req.ACommentCreator)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Exactly one creator must be set", err.Error())
	}

	comment := &domain.Comment{
		CommentText: req.CommentText,
	}
	comment.SetCreator(identity)

	if err := s.commentRepo.CreateOnPost(ctx, post.PostID, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.logger.Info("Comment created",
		zap.Uint("comment_id", comment.CommentID),
		zap.Uint("post_id", post.PostID),
	)

	resp := dto.NewCommentResponse(comment)
	return &resp, nil
}

// UpdateLike adds one like to a post or comment and returns the new count.
// Likes are plain counters; repeated calls keep incrementing.
func (s *postServiceImpl) UpdateLike(ctx context.Context, req *dto.UpdateLikeRequest) (*dto.LikeResponse, error) {
	var likes int
	var err error

	switch req.ItemType {
	case dto.LikeTypePost:
		likes, err = s.postRepo.IncrementHeart(ctx, req.ItemID)
	case dto.LikeTypeComment:
		likes, err = s.commentRepo.IncrementHeart(ctx, req.ItemID)
	default:
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid item type", "")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Item not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update like", err.Error())
	}

	return &dto.LikeResponse{
		ItemID:   req.ItemID,
		ItemType: req.ItemType,
		Likes:    likes,
	}, nil
}
