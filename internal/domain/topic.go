package domain

import "time"

// Topic is a thread container inside a forum. Publish and Expired are both
// nullable: nil Publish means "not scheduled", nil Expired means "never
// expires". No ordering between the two is enforced.
type Topic struct {
	TopicID uint       `gorm:"column:topic_id;primaryKey" json:"topic_id"`
	Text    string     `gorm:"type:varchar(255);not null" json:"text"`
	Publish *time.Time `gorm:"type:date" json:"publish"`
	Expired *time.Time `gorm:"type:date" json:"expired"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topic"
}

// ForumTopic links topics to forums. The schema allows many forums per topic
// even though in practice each topic belongs to the forum that created it.
type ForumTopic struct {
	ForumID uint `gorm:"column:forum_id;primaryKey;index:idx_forum_topic_forum" json:"forum_id"`
	TopicID uint `gorm:"column:topic_id;primaryKey;index:idx_forum_topic_topic" json:"topic_id"`
}

// TableName specifies the table name for ForumTopic
func (ForumTopic) TableName() string {
	return "forum_topic"
}
