package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coboard-api/internal/domain"
	"coboard-api/internal/dto"
	"coboard-api/internal/response"
)

// UpdateForum updates a forum's settings and attaches any new tags. Tags
// already linked stay linked; the diff only ever adds. The forum's
// last_updated is refreshed and the full detail view is returned.
func (s *forumServiceImpl) UpdateForum(ctx context.Context, board, slug string, req *dto.CreateForumRequest) (*dto.ForumDetailResponse, error) {
	forum, err := s.forumRepo.FindByBoardSlug(ctx, board, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Forum not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch forum", err.Error())
	}

	if req.Icon != nil && *req.Icon != "" {
		icon, err := decodeImageField(req.Icon)
		if err != nil {
			return nil, err
		}
		forum.Icon = icon
	}

	forum.ForumName = req.ForumName
	forum.CreatorID = req.CreatorID
	forum.Board = req.Board
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
	if req.Slug != nil && *req.Slug != "" {
		forum.Slug = *req.Slug
	}
	forum.LastUpdated = time.Now().UTC()

	if err := s.forumRepo.Update(ctx, forum); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update forum", err.Error())
	}

	if len(req.Tags) > 0 {
		tagIDs := make([]uint, 0, len(req.Tags))
		for _, ref := range req.Tags {
			tagIDs = append(tagIDs, ref.TagID)
		}
		if err := s.forumRepo.AttachTags(ctx, forum.ForumID, tagIDs); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to attach tags", err.Error())
		}
	}

	s.logger.Info("Forum updated",
		zap.Uint("forum_id", forum.ForumID),
		zap.String("board", forum.Board),
	)

	return s.buildForumDetail(ctx, forum)
}

// buildForumDetail assembles the full detail view of a forum: creator
// username, linked and board-wide tags, bookmarks of both kinds, access
// grants and the topic/post/comment/file tree.
func (s *forumServiceImpl) buildForumDetail(ctx context.Context, forum *domain.Forum) (*dto.ForumDetailResponse, error) {
	detail := &dto.ForumDetailResponse{
		ForumResponse: dto.NewForumResponse(forum),
	}

	creator, err := s.userRepo.FindSEByID(ctx, forum.CreatorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch creator", err.Error())
	}
	if creator != nil {
		detail.Creator = dto.OptionalString(creator.Username)
	}

	tags, err := s.tagRepo.FindByForumID(ctx, forum.ForumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tags", err.Error())
	}
	detail.Tags = dto.NewTagResponses(tags)

	boardTags, err := s.tagRepo.FindByBoard(ctx, forum.Board)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board tags", err.Error())
	}
	detail.BTags = dto.NewTagResponses(boardTags)

	sMarks, err := s.bookmarkRepo.FindSBookmarksByForum(ctx, forum.ForumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch bookmarks", err.Error())
	}
	detail.SBookmarks = dto.NewSBookmarkResponses(sMarks)

	aMarks, err := s.bookmarkRepo.FindABookmarksByForum(ctx, forum.ForumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch bookmarks", err.Error())
	}
	detail.ABookmarks = dto.NewABookmarkResponses(aMarks)

	grants, err := s.accessRepo.FindByForumID(ctx, forum.ForumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch access grants", err.Error())
	}
	detail.Access = dto.NewAccessResponses(grants)

	topics, err := s.topicRepo.FindByForumID(ctx, forum.ForumID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch topics", err.Error())
	}

	detail.Topics = make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		topicResp := dto.NewTopicResponse(&topics[i])

		posts, err := s.postRepo.FindByTopicID(ctx, topics[i].TopicID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch posts", err.Error())
		}

		for j := range posts {
			postResp := dto.NewPostResponse(&posts[j])

			comments, err := s.commentRepo.FindByPostID(ctx, posts[j].PostID)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
			}
			postResp.Comments = dto.NewCommentResponses(comments)

			files, err := s.fileRepo.FindByPostID(ctx, posts[j].PostID)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch files", err.Error())
			}
			postResp.Files = dto.NewFileResponses(files)

			topicResp.Posts = append(topicResp.Posts, postResp)
		}

		detail.Topics = append(detail.Topics, topicResp)
	}

	return detail, nil
}
