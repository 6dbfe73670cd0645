package domain

// Comment is authored content under a post, with the same one-creator
// invariant as Post. Here the legacy store-level CHECK constraint is intact,
// so it is kept alongside the write-path enforcement.
type Comment struct {
	CommentID       uint    `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	CommentText     string  `gorm:"column:comment_text;type:varchar(255);not null" json:"comment_text"`
	CommentHeart    int     `gorm:"column:comment_heart;not null;default:0" json:"comment_heart"`
	SCommentCreator *string `gorm:"column:scomment_creator;type:varchar(10);index:idx_comment_screator;check:chk_creator_only_one,(scomment_creator IS NOT NULL AND acomment_creator IS NULL) OR (scomment_creator IS NULL AND acomment_creator IS NOT NULL)" json:"scomment_creator"`
	ACommentCreator *string `gorm:"column:acomment_creator;type:varchar(10);index:idx_comment_acreator" json:"acomment_creator"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comment"
}

// SetCreator records the authoring identity in the creator column pair.
func (c *Comment) SetCreator(id Identity) {
	c.SCommentCreator, c.ACommentCreator = id.Columns()
}

// CreatorKey returns the creator's user id regardless of kind.
func (c *Comment) CreatorKey() string {
	if c.SCommentCreator != nil {
		return *c.SCommentCreator
	}
	if c.ACommentCreator != nil {
		return *c.ACommentCreator
	}
	return ""
}

// PostComment links comments to posts.
type PostComment struct {
	PostID    uint `gorm:"column:post_id;primaryKey;index:idx_post_comment_post" json:"post_id"`
	CommentID uint `gorm:"column:comment_id;primaryKey;index:idx_post_comment_comment" json:"comment_id"`
}

// TableName specifies the table name for PostComment
func (PostComment) TableName() string {
	return "post_comment"
}
