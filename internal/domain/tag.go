package domain

// Tag is a board-scoped label attachable to forums. Use counts how many times
// the tag has been attached; nothing ever decrements it.
type Tag struct {
	TagID   uint   `gorm:"column:tag_id;primaryKey" json:"tag_id"`
	TagText string `gorm:"column:tag_text;type:varchar(255);not null" json:"tag_text"`
	Board   string `gorm:"type:varchar(255);not null;index:idx_tag_board" json:"board"`
	Use     int    `gorm:"not null;default:0" json:"use"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tag"
}

// ForumTag links tags to forums.
type ForumTag struct {
	ForumID uint `gorm:"column:forum_id;primaryKey;index:idx_forum_tag_forum" json:"forum_id"`
	TagID   uint `gorm:"column:tag_id;primaryKey;index:idx_forum_tag_tag" json:"tag_id"`
}

// TableName specifies the table name for ForumTag
func (ForumTag) TableName() string {
	return "forum_tag"
}
