package domain

// File is the metadata row for an uploaded blob. The bytes themselves live in
// an object store under Path. Unlike Post/Comment, the owner pair carries no
// exclusivity constraint; both may be nil for an unowned file.
type File struct {
	FileID    uint    `gorm:"column:file_id;primaryKey" json:"file_id"`
	Filename  string  `gorm:"type:varchar(255);uniqueIndex:uq_file_filename" json:"filename"`
	Path      string  `gorm:"type:varchar(512)" json:"path"`
	Extension string  `gorm:"type:varchar(32)" json:"extension"`
	SOwner    *string `gorm:"column:s_owner;type:varchar(10);index:idx_file_s_owner" json:"s_owner"`
	AOwner    *string `gorm:"column:a_owner;type:varchar(10);index:idx_file_a_owner" json:"a_owner"`
	PostID    *uint   `gorm:"column:post_id;index:idx_file_post" json:"post_id"`
}

// TableName specifies the table name for File
func (File) TableName() string {
	return "file"
}

// OwnerKey returns the owning user id, preferring the registered owner when
// both columns are somehow populated. Empty when the file is unowned.
func (f *File) OwnerKey() string {
	if f.SOwner != nil {
		return *f.SOwner
	}
	if f.AOwner != nil {
		return *f.AOwner
	}
	return ""
}
