package domain

import "time"

// Forum represents a discussion space on a board, owned by a registered user.
// Name and slug are globally unique; the slug is the lookup key on the wire.
type Forum struct {
	ForumID     uint      `gorm:"column:forum_id;primaryKey" json:"forum_id"`
	ForumName   string    `gorm:"column:forum_name;type:varchar(255);not null;uniqueIndex:uq_forum_name" json:"forum_name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatorID   string    `gorm:"column:creator_id;type:varchar(10);not null;index:idx_forum_creator_id" json:"creator_id"`
	CreatedTime time.Time `gorm:"column:created_time;type:date;not null" json:"created_time"`
	Icon        []byte    `gorm:"type:bytea" json:"-"`
	Wallpaper   string    `gorm:"type:varchar(7);default:'#006b62'" json:"wallpaper"`
	Font        int       `gorm:"default:0" json:"font"`
	SortBy      int       `gorm:"column:sort_by;default:0" json:"sort_by"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_forum_slug" json:"slug"`
	Board       string    `gorm:"type:varchar(255);not null;index:idx_forum_board" json:"board"`
	LastUpdated time.Time `gorm:"column:last_updated;type:date;not null" json:"last_updated"`
}

// TableName specifies the table name for Forum
func (Forum) TableName() string {
	return "forum"
}
