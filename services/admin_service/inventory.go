package admin_service

import (
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) AddIngredient(params inout.AddIngredientReq) (int, error) {
	ingredient := pos_model.Ingredient{
		Name:       params.Name,
		Quantity:   params.Quantity,
		Unit:       params.Unit,
		Category:   params.Category,
		Threshold:  params.Threshold,
		Supplier:   params.Supplier,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	if err := s.db.Create(&ingredient).Error; err != nil {
		return 0, err
	}
	return ingredient.Id, nil
}

func (s *InventoryService) UpdateIngredient(params inout.UpdateIngredientReq) (int, error) {
	var ingredient pos_model.Ingredient
	if err := s.db.Where("id = ?", params.Id).First(&ingredient).Error; err != nil {
		return 0, fmt.Errorf("ingredient not found: %w", err)
	}

	updates := map[string]interface{}{
		"name":        params.Name,
		"quantity":    params.Quantity,
		"unit":        params.Unit,
		"category":    params.Category,
		"threshold":   params.Threshold,
		"supplier":    params.Supplier,
		"update_time": time.Now(),
	}

	if err := s.db.Model(&ingredient).Updates(updates).Error; err != nil {
		return 0, err
	}
	return params.Id, nil
}

func (s *InventoryService) DeleteIngredients(ids []int) error {
	return s.db.Where("id IN ?", ids).Delete(&pos_model.Ingredient{}).Error
}

// Restock adds stock to an ingredient atomically.
func (s *InventoryService) Restock(params inout.RestockReq) error {
	res := s.db.Model(&pos_model.Ingredient{}).
		Where("id = ?", params.Id).
		Updates(map[string]interface{}{
			"quantity":    gorm.Expr("quantity + ?", params.Quantity),
			"update_time": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("ingredient %d not found", params.Id)
	}
	return nil
}

func (s *InventoryService) GetIngredientList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.Ingredient{}).Scopes(applyNameSearch(params.Search))

	var total int64
	var data []pos_model.Ingredient
	offset := (params.Page - 1) * params.PageSize
	if err := query.Count(&total).Order("name ASC").Offset(offset).Limit(params.PageSize).Find(&data).Error; err != nil {
		return inout.ListPageResp{}, err
	}

	return inout.ListPageResp{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    data,
	}, nil
}

// GetLowStock lists ingredients at or below their reorder threshold.
func (s *InventoryService) GetLowStock() ([]pos_model.Ingredient, error) {
	var data []pos_model.Ingredient
	err := s.db.
		Where("threshold > 0 AND quantity <= threshold").
		Order("quantity ASC").
		Find(&data).Error
	if err != nil {
		return nil, err
	}
	return data, nil
}
