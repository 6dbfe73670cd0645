package domain

// Post is authored content under a topic. Exactly one of SPostCreator /
// APostCreator is set; the pair is only the storage shape of an Identity and
// is never written directly; use SetCreator.
//
// The legacy schema also carried a CHECK constraint here, but its second
// branch referenced a misspelled column, so the store never enforced it for
// anonymous creators. Enforcement lives in the write path instead; the
// constraint is deliberately not reproduced.
type Post struct {
	PostID       uint    `gorm:"column:post_id;primaryKey" json:"post_id"`
	PostHead     string  `gorm:"column:post_head;type:varchar(255);not null" json:"post_head"`
	PostBody     string  `gorm:"column:post_body;type:varchar(255)" json:"post_body"`
	Heart        int     `gorm:"default:0" json:"heart"`
	SPostCreator *string `gorm:"column:spost_creator;type:varchar(10);index:idx_post_screator" json:"spost_creator"`
	APostCreator *string `gorm:"column:apost_creator;type:varchar(10);index:idx_post_acreator" json:"apost_creator"`
	Pic          []byte  `gorm:"type:bytea" json:"-"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "post"
}

// SetCreator records the authoring identity in the creator column pair.
func (p *Post) SetCreator(id Identity) {
	p.SPostCreator, p.APostCreator = id.Columns()
}

// CreatorKey returns the creator's user id regardless of kind. Used by the
// contributor aggregation, which dedups on the raw id the way the board
// listing always has.
func (p *Post) CreatorKey() string {
	if p.SPostCreator != nil {
		return *p.SPostCreator
	}
	if p.APostCreator != nil {
		return *p.APostCreator
	}
	return ""
}

// TopicPost links posts to topics.
type TopicPost struct {
	TopicID uint `gorm:"column:topic_id;primaryKey;index:idx_topic_post_topic" json:"topic_id"`
	PostID  uint `gorm:"column:post_id;primaryKey;index:idx_topic_post_post" json:"post_id"`
}

// TableName specifies the table name for TopicPost
func (TopicPost) TableName() string {
	return "topic_post"
}
