package repository

import (
	"errors"

	"gorm.io/gorm"

	"buggie/internal/model"
	pkgErrors "buggie/pkg/errors"
)

type BugRepository interface {
	Create(bug *model.Bug) error
	FindAll() ([]*model.Bug, error)
	FindByID(id int64) (*model.Bug, error)
	Update(bug *model.Bug) error
}

type bugRepository struct {
	db *gorm.DB
}

func NewBugRepository(db *gorm.DB) BugRepository {
	return &bugRepository{db: db}
}

func (r *bugRepository) Create(bug *model.Bug) error {
	if err := r.db.Create(bug).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建缺陷失败", err)
	}
	return nil
}

func (r *bugRepository) FindAll() ([]*model.Bug, error) {
	var bugs []*model.Bug
	if err := r.db.Order("id ASC").Find(&bugs).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询缺陷列表失败", err)
	}
	return bugs, nil
}

func (r *bugRepository) FindByID(id int64) (*model.Bug, error) {
	var bug model.Bug
	err := r.db.First(&bug, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgErrors.ErrBugNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询缺陷失败", err)
	}
	return &bug, nil
}

func (r *bugRepository) Update(bug *model.Bug) error {
	if err := r.db.Save(bug).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新缺陷失败", err)
	}
	return nil
}
