package database

import "petshare/internal/models"

// Models returns the full set of persisted models, in creation order.
// Posts come first so the foreign keys on comments and likes resolve.
func Models() []any {
	return []any{
		&models.Post{},
		&models.Comment{},
		&models.LikeFlag{},
	}
}
