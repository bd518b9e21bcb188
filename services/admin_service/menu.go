package admin_service

import (
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"

	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// AddMenuItem creates a menu item and links its recipe ingredients.
func (s *MenuService) AddMenuItem(params inout.AddMenuItemReq) (int, error) {
	item := pos_model.MenuItem{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		CategoryId:  params.CategoryId,
		Cover:       params.Cover,
		Available:   params.Available,
		CreateTime:  time.Now(),
		UpdateTime:  time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category pos_model.Category
		if err := tx.Where("id = ?", params.CategoryId).First(&category).Error; err != nil {
			return fmt.Errorf("category not found: %w", err)
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return s.replaceIngredients(tx, &item, params.IngredientIds)
	})
	if err != nil {
		return 0, err
	}
	return item.Id, nil
}

// UpdateMenuItem updates the item and, when ingredient ids are supplied,
// replaces the recipe links.
func (s *MenuService) UpdateMenuItem(params inout.UpdateMenuItemReq) (int, error) {
	var item pos_model.MenuItem
	if err := s.db.Where("id = ?", params.Id).First(&item).Error; err != nil {
		return 0, fmt.Errorf("menu item not found: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        params.Name,
			"description": params.Description,
			"price":       params.Price,
			"category_id": params.CategoryId,
			"cover":       params.Cover,
			"available":   params.Available,
			"update_time": time.Now(),
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return err
		}
		if params.IngredientIds != nil {
			return s.replaceIngredients(tx, &item, params.IngredientIds)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return params.Id, nil
}

func (s *MenuService) DeleteMenuItems(ids []int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			item := pos_model.MenuItem{Id: id}
			if err := tx.Model(&item).Association("Ingredients").Clear(); err != nil {
				return err
			}
		}
		return tx.Where("id IN ?", ids).Delete(&pos_model.MenuItem{}).Error
	})
}

func (s *MenuService) GetMenuItemDetail(id int) (*pos_model.MenuItem, error) {
	var item pos_model.MenuItem
	err := s.db.
		Preload("Category").
		Preload("Ingredients").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) GetMenuItemList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.MenuItem{}).
		Preload("Category").
		Preload("Ingredients").
		Scopes(applyNameSearch(params.Search))

	var total int64
	var data []pos_model.MenuItem
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

// replaceIngredients swaps the recipe links for the given ingredient ids.
func (s *MenuService) replaceIngredients(tx *gorm.DB, item *pos_model.MenuItem, ingredientIds []int) error {
	if len(ingredientIds) == 0 {
		return tx.Model(item).Association("Ingredients").Clear()
	}

	var ingredients []pos_model.Ingredient
	if err := tx.Where("id IN ?", ingredientIds).Find(&ingredients).Error; err != nil {
		return err
	}
	if len(ingredients) != len(ingredientIds) {
		return fmt.Errorf("unknown ingredient in recipe: requested %d, found %d", len(ingredientIds), len(ingredients))
	}
	return tx.Model(item).Association("Ingredients").Replace(ingredients)
}
