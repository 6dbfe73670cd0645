package domain

// SEUser is a registered user sourced from an external directory; there is no
// signup endpoint for this population. Passwords are stored and compared
// as-is by the surrounding layer.
type SEUser struct {
	SID      string  `gorm:"column:sid;type:varchar(10);primaryKey" json:"sid"`
	SPW      string  `gorm:"column:spw;type:varchar(255);not null" json:"-"`
	SProfile []byte  `gorm:"column:sprofile;type:bytea" json:"-"`
	SFile    *string `gorm:"column:sfile;type:varchar(255)" json:"sfile"`
	Username string  `gorm:"type:varchar(255)" json:"username"`
}

// TableName specifies the table name for SEUser
func (SEUser) TableName() string {
	return "se_user"
}

// AnonymousUser is a throwaway identity created through signup. Structurally
// parallel to SEUser but kept as a distinct table on purpose.
type AnonymousUser struct {
	AID      string `gorm:"column:aid;type:varchar(10);primaryKey" json:"aid"`
	APW      string `gorm:"column:apw;type:varchar(255);not null" json:"-"`
	AProfile []byte `gorm:"column:aprofile;type:bytea" json:"-"`
	Mail     string `gorm:"type:varchar(255);not null" json:"mail"`
}

// TableName specifies the table name for AnonymousUser
func (AnonymousUser) TableName() string {
	return "anonymous_user"
}
