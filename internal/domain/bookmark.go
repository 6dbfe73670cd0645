package domain

// SBookmark marks a forum saved by a registered user. Existence of the row is
// the whole signal; there is no payload beyond the composite key.
type SBookmark struct {
	ForumID uint   `gorm:"column:forum_id;primaryKey;index:idx_sbookmark_forum" json:"forum_id"`
	UserID  string `gorm:"column:user_id;type:varchar(255);primaryKey;index:idx_sbookmark_user" json:"user_id"`
}

// TableName specifies the table name for SBookmark
func (SBookmark) TableName() string {
	return "sbookmark"
}

// ABookmark is the anonymous-user counterpart of SBookmark.
type ABookmark struct {
	ForumID uint   `gorm:"column:forum_id;primaryKey;index:idx_abookmark_forum" json:"forum_id"`
	UserID  string `gorm:"column:user_id;type:varchar(255);primaryKey;index:idx_abookmark_user" json:"user_id"`
}

// TableName specifies the table name for ABookmark
func (ABookmark) TableName() string {
	return "abookmark"
}

// Access grants a registered user elevated rights on a forum's settings.
type Access struct {
	ForumID uint   `gorm:"column:forum_id;primaryKey;index:idx_access_forum" json:"forum_id"`
	UserID  string `gorm:"column:user_id;type:varchar(10);primaryKey;index:idx_access_user" json:"user_id"`
}

// TableName specifies the table name for Access
func (Access) TableName() string {
	return "access"
}
