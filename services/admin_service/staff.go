package admin_service

import (
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) AddStaff(params inout.AddStaffReq) (int, error) {
	staff := pos_model.Staff{
		Name:       params.Name,
		Role:       params.Role,
		Phone:      params.Phone,
		Email:      params.Email,
		HourlyRate: params.HourlyRate,
		Enable:     params.Enable,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	if err := s.db.Create(&staff).Error; err != nil {
		return 0, err
	}
	return staff.Id, nil
}

func (s *StaffService) UpdateStaff(params inout.UpdateStaffReq) (int, error) {
	var staff pos_model.Staff
	if err := s.db.Where("id = ?", params.Id).First(&staff).Error; err != nil {
		return 0, fmt.Errorf("staff member not found: %w", err)
	}

	updates := map[string]interface{}{
		"name":        params.Name,
		"role":        params.Role,
		"phone":       params.Phone,
		"email":       params.Email,
		"hourly_rate": params.HourlyRate,
		"enable":      params.Enable,
		"update_time": time.Now(),
	}

	if err := s.db.Model(&staff).Updates(updates).Error; err != nil {
		return 0, err
	}
	return params.Id, nil
}

func (s *StaffService) DeleteStaff(ids []int) error {
	return s.db.Where("id IN ?", ids).Delete(&pos_model.Staff{}).Error
}

func (s *StaffService) GetStaffDetail(id int) (*pos_model.Staff, error) {
	var staff pos_model.Staff
	if err := s.db.Where("id = ?", id).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *StaffService) GetStaffList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.Staff{}).Scopes(applyNameSearch(params.Search))

	var total int64
	var data []pos_model.Staff
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

func applyNameSearch(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search != "" {
			return db.Where("name LIKE ?", "%"+search+"%")
		}
		return db
	}
}
