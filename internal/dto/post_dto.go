package dto

import (
	"coboard-api/internal/domain"
	"coboard-api/internal/util"
)

// CreateTopicRequest represents the request to open a topic in a forum
type CreateTopicRequest struct {
	Text    string  `json:"text" binding:"required"`
	Publish *string `json:"publish"`
	Expired *string `json:"expired"`
}

// TopicResponse represents a topic with its posts
type TopicResponse struct {
	TopicID uint           `json:"topic_id"`
	Text    string         `json:"text"`
	Publish *string        `json:"publish"`
	Expired *string        `json:"expired"`
	Posts   []PostResponse `json:"posts"`
}

// NewTopicResponse converts a topic to its wire form. Posts default to an
// empty array, not null.
func NewTopicResponse(t *domain.Topic) TopicResponse {
	return TopicResponse{
		TopicID: t.TopicID,
		Text:    t.Text,
		Publish: FormatDatePtr(t.Publish),
		Expired: FormatDatePtr(t.Expired),
		Posts:   []PostResponse{},
	}
}

// CreatePostRequest represents the request to add a post to a topic
// @Description exactly one of spost_creator and apost_creator must be set
// @Description pic is a base64 encoded image, at most 1 MiB decoded
type CreatePostRequest struct {
	PostHead     string  `json:"post_head" binding:"required"`
	PostBody     *string `json:"post_body"`
	Heart        *int    `json:"heart"`
	SPostCreator *string `json:"spost_creator"`
	APostCreator *string `json:"apost_creator"`
	Pic          *string `json:"pic"`
}

// PostResponse represents a post with its comments and files
type PostResponse struct {
	PostID       uint              `json:"post_id"`
	PostHead     string            `json:"post_head"`
	PostBody     *string           `json:"post_body"`
	Heart        int               `json:"heart"`
	SPostCreator *string           `json:"spost_creator"`
	APostCreator *string           `json:"apost_creator"`
	Pic          *string           `json:"pic"`
	Comments     []CommentResponse `json:"comments"`
	Files        []FileResponse    `json:"files"`
}

// NewPostResponse converts a post to its wire form, encoding the picture
func NewPostResponse(p *domain.Post) PostResponse {
	resp := PostResponse{
		PostID:       p.PostID,
		PostHead:     p.PostHead,
		PostBody:     OptionalString(p.PostBody),
		Heart:        p.Heart,
		SPostCreator: p.SPostCreator,
		APostCreator: p.APostCreator,
		Comments:     []CommentResponse{},
		Files:        []FileResponse{},
	}
	if len(p.Pic) > 0 {
		pic := util.EncodeImage(p.Pic)
		resp.Pic = &pic
	}
	return resp
}

// CreateCommentRequest represents the request to comment on a post
// @Description exactly one of scomment_creator and acomment_creator must be set
type CreateCommentRequest struct {
	CommentText     string  `json:"comment_text" binding:"required"`
	SCommentCreator *string `json:"scomment_creator"`
	ACommentCreator *string `json:"acomment_creator"`
}

// CommentResponse represents a comment
type CommentResponse struct {
	CommentID       uint    `json:"comment_id"`
	CommentText     string  `json:"comment_text"`
	CommentHeart    int     `json:"comment_heart"`
	SCommentCreator *string `json:"scomment_creator"`
	ACommentCreator *string `json:"acomment_creator"`
}

// NewCommentResponse converts a comment to its wire form
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:       c.CommentID,
		CommentText:     c.CommentText,
		CommentHeart:    c.CommentHeart,
		SCommentCreator: c.SCommentCreator,
		ACommentCreator: c.ACommentCreator,
	}
}

// NewCommentResponses converts a slice of comments
func NewCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}

// Like target types
const (
	LikeTypePost    = "post"
	LikeTypeComment = "comment"
)

// UpdateLikeRequest represents the request to add a like to a post or comment
type UpdateLikeRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	ItemType string `json:"item_type" binding:"required,oneof=post comment"`
}

// LikeResponse represents the like count after an update
type LikeResponse struct {
	ItemID   uint   `json:"item_id"`
	ItemType string `json:"item_type"`
	Likes    int    `json:"likes"`
}
