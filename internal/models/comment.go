package models

// Comment is a text reply attached to exactly one post.
type Comment struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	PostID    string `gorm:"column:postId;not null;index" json:"postId"`
	UserName  string `gorm:"column:userName;not null" json:"userName"`
	Text      string `gorm:"column:text;not null" json:"text"`
	CreatedAt string `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName overrides the table name used by GORM.
func (Comment) TableName() string { return "comments" }
