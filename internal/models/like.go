package models

// LikeFlag records whether the single local user currently likes a post.
// At most one row exists per post; toggling updates the row in place.
type LikeFlag struct {
	ID     string `gorm:"column:id;primaryKey" json:"id"`
	PostID string `gorm:"column:postId;not null;uniqueIndex:idx_likes_post" json:"postId"`
	Liked  bool   `gorm:"column:liked;default:true" json:"liked"`
}

// TableName overrides the table name used by GORM.
func (LikeFlag) TableName() string { return "likes" }
