package dto

import (
	"time"

	"coboard-api/internal/domain"
	"coboard-api/internal/util"
)

// dateLayout is the wire format for date-only fields
const dateLayout = "2006-01-02"

// FormatDate renders a date-only field for responses
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDatePtr renders an optional date-only field, nil stays nil
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses a date-only field from a request
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ParseDatePtr parses an optional date-only field, nil stays nil
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// OptionalString maps the empty string to a JSON null
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TagRef identifies an existing tag to attach to a forum
type TagRef struct {
	TagID uint `json:"tag_id" binding:"required"`
}

// TagResponse represents a tag
type TagResponse struct {
	TagID   uint   `json:"tag_id"`
	TagText string `json:"tag_text"`
	Board   string `json:"board"`
	Use     int    `json:"use"`
}

// NewTagResponse converts a tag to its wire form
func NewTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID:   t.TagID,
		TagText: t.TagText,
		Board:   t.Board,
		Use:     t.Use,
	}
}

// NewTagResponses converts a slice of tags
func NewTagResponses(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, NewTagResponse(&tags[i]))
	}
	return out
}

// CreateForumRequest represents the request to create or update a forum
// @Description icon is a base64 encoded image, at most 1 MiB decoded
// @Description tags reference existing tag IDs and are attach-only
type CreateForumRequest struct {
	ForumName   string  `json:"forum_name" binding:"required"`
	Description *string `json:"description"`
	CreatorID   string  `json:"creator_id" binding:"required"`
	CreatedTime *string `json:"created_time"`
	Icon        *string `json:"icon"`
	Wallpaper   *string `json:"wallpaper"`
	Font        *int    `json:"font"`
	SortBy      *int    `json:"sort_by"`
	Slug        *string `json:"slug"`
	Board       string  `json:"board" binding:"required"`
	Tags        []TagRef `json:"tags"`
}

// ForumResponse represents a forum without its nested content
type ForumResponse struct {
	ForumID     uint    `json:"forum_id"`
	ForumName   string  `json:"forum_name"`
	Description *string `json:"description"`
	CreatorID   string  `json:"creator_id"`
	CreatedTime string  `json:"created_time"`
	Icon        *string `json:"icon"`
	Wallpaper   string  `json:"wallpaper"`
	Font        int     `json:"font"`
	SortBy      int     `json:"sort_by"`
	Slug        string  `json:"slug"`
	Board       string  `json:"board"`
	LastUpdated string  `json:"last_updated"`
}

// NewForumResponse converts a forum to its wire form, encoding the icon
func NewForumResponse(f *domain.Forum) ForumResponse {
	resp := ForumResponse{
		ForumID:     f.ForumID,
		ForumName:   f.ForumName,
		Description: OptionalString(f.Description),
		CreatorID:   f.CreatorID,
		CreatedTime: FormatDate(f.CreatedTime),
		Wallpaper:   f.Wallpaper,
		Font:        f.Font,
		SortBy:      f.SortBy,
		Slug:        f.Slug,
		Board:       f.Board,
		LastUpdated: FormatDate(f.LastUpdated),
	}
	if len(f.Icon) > 0 {
		icon := util.EncodeImage(f.Icon)
		resp.Icon = &icon
	}
	return resp
}

// NewForumResponses converts a slice of forums
func NewForumResponses(forums []domain.Forum) []ForumResponse {
	out := make([]ForumResponse, 0, len(forums))
	for i := range forums {
		out = append(out, NewForumResponse(&forums[i]))
	}
	return out
}

// ForumWithContributors is a forum plus the count of distinct users who
// posted or commented in it, excluding the creator
type ForumWithContributors struct {
	ForumResponse
	TotalContributors int `json:"total_contributors"`
}

// ForumTagResponse represents a forum-tag link
type ForumTagResponse struct {
	ForumID uint `json:"forum_id"`
	TagID   uint `json:"tag_id"`
}

// NewForumTagResponses converts forum-tag links
func NewForumTagResponses(links []domain.ForumTag) []ForumTagResponse {
	out := make([]ForumTagResponse, 0, len(links))
	for _, l := range links {
		out = append(out, ForumTagResponse{ForumID: l.ForumID, TagID: l.TagID})
	}
	return out
}

// AccessResponse represents an access grant on a forum
type AccessResponse struct {
	ForumID uint   `json:"forum_id"`
	UserID  string `json:"user_id"`
}

// NewAccessResponses converts access grants
func NewAccessResponses(grants []domain.Access) []AccessResponse {
	out := make([]AccessResponse, 0, len(grants))
	for _, g := range grants {
		out = append(out, AccessResponse{ForumID: g.ForumID, UserID: g.UserID})
	}
	return out
}

// BookmarkResponse represents a bookmark of either user kind
type BookmarkResponse struct {
	ForumID uint   `json:"forum_id"`
	UserID  string `json:"user_id"`
}

// NewSBookmarkResponses converts registered-user bookmarks
func NewSBookmarkResponses(marks []domain.SBookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(marks))
	for _, m := range marks {
		out = append(out, BookmarkResponse{ForumID: m.ForumID, UserID: m.UserID})
	}
	return out
}

// NewABookmarkResponses converts anonymous-user bookmarks
func NewABookmarkResponses(marks []domain.ABookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(marks))
	for _, m := range marks {
		out = append(out, BookmarkResponse{ForumID: m.ForumID, UserID: m.UserID})
	}
	return out
}

// BoardResponse represents the listing of a board
type BoardResponse struct {
	Forums   []ForumWithContributors `json:"forums"`
	Tags     []TagResponse           `json:"tags"`
	ForumTag []ForumTagResponse      `json:"forumtag"`
	Access   []AccessResponse        `json:"access"`
}

// ForumDetailResponse represents a forum with its full nested content
type ForumDetailResponse struct {
	ForumResponse
	Creator    *string            `json:"creator"`
	Topics     []TopicResponse    `json:"topics"`
	Tags       []TagResponse      `json:"tags"`
	BTags      []TagResponse      `json:"btags"`
	SBookmarks []BookmarkResponse `json:"sbookmarks"`
	ABookmarks []BookmarkResponse `json:"abookmarks"`
	Access     []AccessResponse   `json:"access"`
}

// CreateBookmarkRequest represents the request to bookmark a forum.
// Status selects the user table: "se" for registered users, anything else
// for anonymous users.
type CreateBookmarkRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
