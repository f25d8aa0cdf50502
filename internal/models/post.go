// Package models contains data structures for the application's domain models.
package models

// Post is a single pet-photo post. Column names mirror the on-device schema
// used by the mobile client, so a feed exported from the app can be opened
// directly by this daemon.
type Post struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	PetName   string `gorm:"column:petName;not null" json:"petName"`
	PetImage  string `gorm:"column:petImage;not null" json:"petImage"`
	OwnerName string `gorm:"column:ownerName;not null" json:"ownerName"`
	Caption   string `gorm:"column:caption" json:"caption"`
	Hashtags  string `gorm:"column:hashtags" json:"hashtags"`

	// Likes and Comments are denormalized counters maintained by the
	// mutating operations, never recomputed from the detail rows.
	Likes    int `gorm:"column:likes;default:0" json:"likes"`
	Comments int `gorm:"column:comments;default:0" json:"comments"`

	// IsLiked is stored for schema compatibility but superseded at read
	// time by the like-flag row for the local user.
	IsLiked bool `gorm:"column:isLiked;default:false" json:"isLiked"`

	// CreatedAt is an ISO-8601 string set once at creation, immutable.
	CreatedAt string `gorm:"column:createdAt;not null" json:"createdAt"`

	// Timestamp is the human-readable relative-time label, computed once
	// at creation time and never refreshed on read.
	Timestamp string `gorm:"column:timestamp;not null" json:"timestamp"`

	// Owned detail rows; the declarative cascade removes them with the post.
	CommentRows []Comment  `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	LikeRows    []LikeFlag `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM.
func (Post) TableName() string { return "posts" }
