package admin_service

import (
	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// GetActivityList returns a page of the activity log, newest first.
func (s *ActivityService) GetActivityList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.ActivityLog{}).Scopes(applyActionSearch(params.Search))

	var total int64
	var data []pos_model.ActivityLog
	offset := (params.Page - 1) * params.PageSize
	if err := query.Count(&total).Order("id DESC").Offset(offset).Limit(params.PageSize).Find(&data).Error; err != nil {
		return inout.ListPageResp{}, err
	}

	return inout.ListPageResp{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    data,
	}, nil
}

func applyActionSearch(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search != "" {
			return db.Where("action LIKE ?", "%"+search+"%")
		}
		return db
	}
}
