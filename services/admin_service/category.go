package admin_service

import (
	"errors"
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) AddCategory(params inout.AddCategoryReq) (int, error) {
	category := pos_model.Category{
		Name:        params.Name,
		Description: params.Description,
		Status:      params.Status,
		CreateTime:  time.Now(),
		UpdateTime:  time.Now(),
	}

	if err := s.db.Create(&category).Error; err != nil {
		return 0, err
	}
	return category.Id, nil
}

func (s *CategoryService) UpdateCategory(params inout.UpdateCategoryReq) (int, error) {
	var category pos_model.Category
	if err := s.db.Where("id = ?", params.Id).First(&category).Error; err != nil {
		return 0, fmt.Errorf("category not found: %w", err)
	}

	updates := map[string]interface{}{
		"name":        params.Name,
		"description": params.Description,
		"status":      params.Status,
		"update_time": time.Now(),
	}

	if err := s.db.Model(&category).Updates(updates).Error; err != nil {
		return 0, err
	}
	return params.Id, nil
}

// DeleteCategory refuses to remove a category that still has menu items.
func (s *CategoryService) DeleteCategory(id int) error {
	var count int64
	if err := s.db.Model(&pos_model.MenuItem{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("category still has menu items")
	}
	return s.db.Where("id = ?", id).Delete(&pos_model.Category{}).Error
}

func (s *CategoryService) GetCategoryList() ([]pos_model.Category, error) {
	var data []pos_model.Category
	if err := s.db.Order("name ASC").Find(&data).Error; err != nil {
		return nil, err
	}
	return data, nil
}
