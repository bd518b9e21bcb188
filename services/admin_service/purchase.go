package admin_service

import (
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// CreatePurchaseOrder records a purchase order and applies the stock
// increments. The order row, its items and every stock update run in one
// transaction, so a mid-loop failure rolls everything back.
func (s *PurchaseService) CreatePurchaseOrder(c *gin.Context, params inout.CreatePurchaseOrderReq) (int, error) {
	po := pos_model.PurchaseOrder{
		Supplier:   params.Supplier,
		Status:     pos_model.PurchaseStatusReceived,
		CreatedBy:  c.GetInt("uid"),
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var totalCost float64
		for _, item := range params.Items {
			totalCost += item.UnitCost * item.Quantity
		}
		po.TotalCost = utils.Round2(totalCost)

		if err := tx.Create(&po).Error; err != nil {
			return err
		}

		for _, item := range params.Items {
			poItem := pos_model.PurchaseOrderItem{
				PurchaseOrderId: po.Id,
				IngredientId:    item.IngredientId,
				Quantity:        item.Quantity,
				UnitCost:        item.UnitCost,
			}
			if err := tx.Create(&poItem).Error; err != nil {
				return err
			}

			res := tx.Model(&pos_model.Ingredient{}).
				Where("id = ?", item.IngredientId).
				Updates(map[string]interface{}{
					"quantity":    gorm.Expr("quantity + ?", item.Quantity),
					"update_time": time.Now(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("ingredient %d not found", item.IngredientId)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return po.Id, nil
}

func (s *PurchaseService) GetPurchaseOrderList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.PurchaseOrder{}).
		Preload("Items").
		Preload("Items.Ingredient")

	var total int64
	var data []pos_model.PurchaseOrder
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
