package repos

import (
	"gorm.io/gorm"

	"github.com/aulanova/aulanova-backend/internal/data/repos/catalog"
	"github.com/aulanova/aulanova-backend/internal/data/repos/user"
	"github.com/aulanova/aulanova-backend/internal/pkg/logger"
)

type UserRepo = user.UserRepo
type ProfileRepo = user.ProfileRepo

type ContentRepo = catalog.ContentRepo
type CategoryRepo = catalog.CategoryRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return user.NewProfileRepo(db, baseLog)
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return catalog.NewContentRepo(db, baseLog)
}
func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return catalog.NewCategoryRepo(db, baseLog)
}
