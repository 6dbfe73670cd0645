package service

import (
	"context"

	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/repository"
)

// Mock repositories with overridable Func fields. Single-record finders
// default to gorm.ErrRecordNotFound so an unstubbed lookup behaves like an
// empty database instead of dereferencing nil.

// MockForumRepository is a mock implementation of ForumRepository
type MockForumRepository struct {
	CreateWithTagsFunc   func(ctx context.Context, forum *domain.Forum, tagIDs []uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*domain.Forum, error)
	FindByBoardFunc      func(ctx context.Context, board string) ([]domain.Forum, error)
	FindByBoardSlugFunc  func(ctx context.Context, board, slug string) (*domain.Forum, error)
	FindBySlugFunc       func(ctx context.Context, slug string) (*domain.Forum, error)
	FindByCreatorFunc    func(ctx context.Context, creatorID string) ([]domain.Forum, error)
	UpdateFunc           func(ctx context.Context, forum *domain.Forum) error
	AttachTagsFunc       func(ctx context.Context, forumID uint, tagIDs []uint) error
	DeleteCascadeFunc    func(ctx context.Context, forumID uint) error
}

var _ repository.ForumRepository = (*MockForumRepository)(nil)

func (m *MockForumRepository) CreateWithTags(ctx context.Context, forum *domain.Forum, tagIDs []uint) error {
	if m.CreateWithTagsFunc != nil {
		return m.CreateWithTagsFunc(ctx, forum, tagIDs)
	}
	return nil
}

func (m *MockForumRepository) FindByID(ctx context.Context, id uint) (*domain.Forum, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockForumRepository) FindByBoard(ctx context.Context, board string) ([]domain.Forum, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, board)
	}
	return []domain.Forum{}, nil
}

func (m *MockForumRepository) FindByBoardSlug(ctx context.Context, board, slug string) (*domain.Forum, error) {
	if m.FindByBoardSlugFunc != nil {
		return m.FindByBoardSlugFunc(ctx, board, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockForumRepository) FindBySlug(ctx context.Context, slug string) (*domain.Forum, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockForumRepository) FindByCreator(ctx context.Context, creatorID string) ([]domain.Forum, error) {
	if m.FindByCreatorFunc != nil {
		return m.FindByCreatorFunc(ctx, creatorID)
	}
	return []domain.Forum{}, nil
}

func (m *MockForumRepository) Update(ctx context.Context, forum *domain.Forum) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, forum)
	}
	return nil
}

func (m *MockForumRepository) AttachTags(ctx context.Context, forumID uint, tagIDs []uint) error {
	if m.AttachTagsFunc != nil {
		return m.AttachTagsFunc(ctx, forumID, tagIDs)
	}
	return nil
}

func (m *MockForumRepository) DeleteCascade(ctx context.Context, forumID uint) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, forumID)
	}
	return nil
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	CreateInForumFunc func(ctx context.Context, forumID uint, topic *domain.Topic) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Topic, error)
	FindByForumIDFunc func(ctx context.Context, forumID uint) ([]domain.Topic, error)
}

var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func (m *MockTopicRepository) CreateInForum(ctx context.Context, forumID uint, topic *domain.Topic) error {
	if m.CreateInForumFunc != nil {
		return m.CreateInForumFunc(ctx, forumID, topic)
	}
	return nil
}

func (m *MockTopicRepository) FindByID(ctx context.Context, id uint) (*domain.Topic, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTopicRepository) FindByForumID(ctx context.Context, forumID uint) ([]domain.Topic, error) {
	if m.FindByForumIDFunc != nil {
		return m.FindByForumIDFunc(ctx, forumID)
	}
	return []domain.Topic{}, nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateInTopicFunc  func(ctx context.Context, forumID, topicID uint, post *domain.Post) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Post, error)
	FindByTopicIDFunc  func(ctx context.Context, topicID uint) ([]domain.Post, error)
	IncrementHeartFunc func(ctx context.Context, postID uint) (int, error)
}

var _ repository.PostRepository = (*MockPostRepository)(nil)

func (m *MockPostRepository) CreateInTopic(ctx context.Context, forumID, topicID uint, post *domain.Post) error {
	if m.CreateInTopicFunc != nil {
		return m.CreateInTopicFunc(ctx, forumID, topicID, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPostRepository) FindByTopicID(ctx context.Context, topicID uint) ([]domain.Post, error) {
	if m.FindByTopicIDFunc != nil {
		return m.FindByTopicIDFunc(ctx, topicID)
	}
	return []domain.Post{}, nil
}

func (m *MockPostRepository) IncrementHeart(ctx context.Context, postID uint) (int, error) {
	if m.IncrementHeartFunc != nil {
		return m.IncrementHeartFunc(ctx, postID)
	}
	return 0, gorm.ErrRecordNotFound
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateOnPostFunc   func(ctx context.Context, postID uint, comment *domain.Comment) error
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Comment, error)
	FindByPostIDFunc   func(ctx context.Context, postID uint) ([]domain.Comment, error)
	IncrementHeartFunc func(ctx context.Context, commentID uint) (int, error)
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) CreateOnPost(ctx context.Context, postID uint, comment *domain.Comment) error {
	if m.CreateOnPostFunc != nil {
		return m.CreateOnPostFunc(ctx, postID, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCommentRepository) FindByPostID(ctx context.Context, postID uint) ([]domain.Comment, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return []domain.Comment{}, nil
}

func (m *MockCommentRepository) IncrementHeart(ctx context.Context, commentID uint) (int, error) {
	if m.IncrementHeartFunc != nil {
		return m.IncrementHeartFunc(ctx, commentID)
	}
	return 0, gorm.ErrRecordNotFound
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc              func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.Tag, error)
	FindByBoardFunc         func(ctx context.Context, board string) ([]domain.Tag, error)
	FindByForumIDFunc       func(ctx context.Context, forumID uint) ([]domain.Tag, error)
	FindLinksByForumIDsFunc func(ctx context.Context, forumIDs []uint) ([]domain.ForumTag, error)
}

var _ repository.TagRepository = (*MockTagRepository)(nil)

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTagRepository) FindByBoard(ctx context.Context, board string) ([]domain.Tag, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, board)
	}
	return []domain.Tag{}, nil
}

func (m *MockTagRepository) FindByForumID(ctx context.Context, forumID uint) ([]domain.Tag, error) {
	if m.FindByForumIDFunc != nil {
		return m.FindByForumIDFunc(ctx, forumID)
	}
	return []domain.Tag{}, nil
}

func (m *MockTagRepository) FindLinksByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.ForumTag, error) {
	if m.FindLinksByForumIDsFunc != nil {
		return m.FindLinksByForumIDsFunc(ctx, forumIDs)
	}
	return []domain.ForumTag{}, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindAllSEFunc         func(ctx context.Context) ([]domain.SEUser, error)
	FindAllAnonymousFunc  func(ctx context.Context) ([]domain.AnonymousUser, error)
	FindSEByIDFunc        func(ctx context.Context, sid string) (*domain.SEUser, error)
	FindAnonymousByIDFunc func(ctx context.Context, aid string) (*domain.AnonymousUser, error)
	CreateAnonymousFunc   func(ctx context.Context, user *domain.AnonymousUser) error
	UpdateSEFunc          func(ctx context.Context, user *domain.SEUser) error
	UpdateAnonymousFunc   func(ctx context.Context, currentAID string, user *domain.AnonymousUser) error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindAllSE(ctx context.Context) ([]domain.SEUser, error) {
	if m.FindAllSEFunc != nil {
		return m.FindAllSEFunc(ctx)
	}
	return []domain.SEUser{}, nil
}

func (m *MockUserRepository) FindAllAnonymous(ctx context.Context) ([]domain.AnonymousUser, error) {
	if m.FindAllAnonymousFunc != nil {
		return m.FindAllAnonymousFunc(ctx)
	}
	return []domain.AnonymousUser{}, nil
}

func (m *MockUserRepository) FindSEByID(ctx context.Context, sid string) (*domain.SEUser, error) {
	if m.FindSEByIDFunc != nil {
		return m.FindSEByIDFunc(ctx, sid)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindAnonymousByID(ctx context.Context, aid string) (*domain.AnonymousUser, error) {
	if m.FindAnonymousByIDFunc != nil {
		return m.FindAnonymousByIDFunc(ctx, aid)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) CreateAnonymous(ctx context.Context, user *domain.AnonymousUser) error {
	if m.CreateAnonymousFunc != nil {
		return m.CreateAnonymousFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateSE(ctx context.Context, user *domain.SEUser) error {
	if m.UpdateSEFunc != nil {
		return m.UpdateSEFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateAnonymous(ctx context.Context, currentAID string, user *domain.AnonymousUser) error {
	if m.UpdateAnonymousFunc != nil {
		return m.UpdateAnonymousFunc(ctx, currentAID, user)
	}
	return nil
}

// MockBookmarkRepository is a mock implementation of BookmarkRepository
type MockBookmarkRepository struct {
	CreateSBookmarkFunc                 func(ctx context.Context, mark *domain.SBookmark) error
	CreateABookmarkFunc                 func(ctx context.Context, mark *domain.ABookmark) error
	DeleteSBookmarkFunc                 func(ctx context.Context, forumID uint, userID string) error
	DeleteABookmarkFunc                 func(ctx context.Context, forumID uint, userID string) error
	FindSBookmarksByForumFunc           func(ctx context.Context, forumID uint) ([]domain.SBookmark, error)
	FindABookmarksByForumFunc           func(ctx context.Context, forumID uint) ([]domain.ABookmark, error)
	FindForumsBookmarkedBySEFunc        func(ctx context.Context, sid string) ([]domain.Forum, error)
	FindForumsBookmarkedByAnonymousFunc func(ctx context.Context, aid string) ([]domain.Forum, error)
}

var _ repository.BookmarkRepository = (*MockBookmarkRepository)(nil)

func (m *MockBookmarkRepository) CreateSBookmark(ctx context.Context, mark *domain.SBookmark) error {
	if m.CreateSBookmarkFunc != nil {
		return m.CreateSBookmarkFunc(ctx, mark)
	}
	return nil
}

func (m *MockBookmarkRepository) CreateABookmark(ctx context.Context, mark *domain.ABookmark) error {
	if m.CreateABookmarkFunc != nil {
		return m.CreateABookmarkFunc(ctx, mark)
	}
	return nil
}

func (m *MockBookmarkRepository) DeleteSBookmark(ctx context.Context, forumID uint, userID string) error {
	if m.DeleteSBookmarkFunc != nil {
		return m.DeleteSBookmarkFunc(ctx, forumID, userID)
	}
	return nil
}

func (m *MockBookmarkRepository) DeleteABookmark(ctx context.Context, forumID uint, userID string) error {
	if m.DeleteABookmarkFunc != nil {
		return m.DeleteABookmarkFunc(ctx, forumID, userID)
	}
	return nil
}

func (m *MockBookmarkRepository) FindSBookmarksByForum(ctx context.Context, forumID uint) ([]domain.SBookmark, error) {
	if m.FindSBookmarksByForumFunc != nil {
		return m.FindSBookmarksByForumFunc(ctx, forumID)
	}
	return []domain.SBookmark{}, nil
}

func (m *MockBookmarkRepository) FindABookmarksByForum(ctx context.Context, forumID uint) ([]domain.ABookmark, error) {
	if m.FindABookmarksByForumFunc != nil {
		return m.FindABookmarksByForumFunc(ctx, forumID)
	}
	return []domain.ABookmark{}, nil
}

func (m *MockBookmarkRepository) FindForumsBookmarkedBySE(ctx context.Context, sid string) ([]domain.Forum, error) {
	if m.FindForumsBookmarkedBySEFunc != nil {
		return m.FindForumsBookmarkedBySEFunc(ctx, sid)
	}
	return []domain.Forum{}, nil
}

func (m *MockBookmarkRepository) FindForumsBookmarkedByAnonymous(ctx context.Context, aid string) ([]domain.Forum, error) {
	if m.FindForumsBookmarkedByAnonymousFunc != nil {
		return m.FindForumsBookmarkedByAnonymousFunc(ctx, aid)
	}
	return []domain.Forum{}, nil
}

// MockAccessRepository is a mock implementation of AccessRepository
type MockAccessRepository struct {
	CreateFunc            func(ctx context.Context, grant *domain.Access) error
	DeleteAllForForumFunc func(ctx context.Context, forumID uint) (int64, error)
	FindByForumIDFunc     func(ctx context.Context, forumID uint) ([]domain.Access, error)
	FindByForumIDsFunc    func(ctx context.Context, forumIDs []uint) ([]domain.Access, error)
}

var _ repository.AccessRepository = (*MockAccessRepository)(nil)

func (m *MockAccessRepository) Create(ctx context.Context, grant *domain.Access) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, grant)
	}
	return nil
}

func (m *MockAccessRepository) DeleteAllForForum(ctx context.Context, forumID uint) (int64, error) {
	if m.DeleteAllForForumFunc != nil {
		return m.DeleteAllForForumFunc(ctx, forumID)
	}
	return 0, nil
}

func (m *MockAccessRepository) FindByForumID(ctx context.Context, forumID uint) ([]domain.Access, error) {
	if m.FindByForumIDFunc != nil {
		return m.FindByForumIDFunc(ctx, forumID)
	}
	return []domain.Access{}, nil
}

func (m *MockAccessRepository) FindByForumIDs(ctx context.Context, forumIDs []uint) ([]domain.Access, error) {
	if m.FindByForumIDsFunc != nil {
		return m.FindByForumIDsFunc(ctx, forumIDs)
	}
	return []domain.Access{}, nil
}

// MockFileRepository is a mock implementation of FileRepository
type MockFileRepository struct {
	CreateFunc       func(ctx context.Context, file *domain.File) error
	UpdatePathFunc   func(ctx context.Context, fileID uint, path string) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.File, error)
	FindBySOwnerFunc func(ctx context.Context, sid string) ([]domain.File, error)
	FindByAOwnerFunc func(ctx context.Context, aid string) ([]domain.File, error)
	FindByPostIDFunc func(ctx context.Context, postID uint) ([]domain.File, error)
}

var _ repository.FileRepository = (*MockFileRepository)(nil)

func (m *MockFileRepository) Create(ctx context.Context, file *domain.File) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, file)
	}
	return nil
}

func (m *MockFileRepository) UpdatePath(ctx context.Context, fileID uint, path string) error {
	if m.UpdatePathFunc != nil {
		return m.UpdatePathFunc(ctx, fileID, path)
	}
	return nil
}

func (m *MockFileRepository) FindByID(ctx context.Context, id uint) (*domain.File, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockFileRepository) FindBySOwner(ctx context.Context, sid string) ([]domain.File, error) {
	if m.FindBySOwnerFunc != nil {
		return m.FindBySOwnerFunc(ctx, sid)
	}
	return []domain.File{}, nil
}

func (m *MockFileRepository) FindByAOwner(ctx context.Context, aid string) ([]domain.File, error) {
	if m.FindByAOwnerFunc != nil {
		return m.FindByAOwnerFunc(ctx, aid)
	}
	return []domain.File{}, nil
}

func (m *MockFileRepository) FindByPostID(ctx context.Context, postID uint) ([]domain.File, error) {
	if m.FindByPostIDFunc != nil {
		return m.FindByPostIDFunc(ctx, postID)
	}
	return []domain.File{}, nil
}
