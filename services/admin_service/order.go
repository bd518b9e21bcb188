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

// Allowed order status transitions.
var orderTransitions = map[string][]string{
	pos_model.OrderStatusPending:    {pos_model.OrderStatusInProgress, pos_model.OrderStatusCancelled},
	pos_model.OrderStatusInProgress: {pos_model.OrderStatusCompleted, pos_model.OrderStatusCancelled},
	pos_model.OrderStatusCompleted:  {pos_model.OrderStatusPaid},
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder opens an order. Each line captures the menu price at the time
// of sale; the stored total is the sum of those captured prices.
func (s *OrderService) CreateOrder(c *gin.Context, params inout.CreateOrderReq) (*pos_model.Order, error) {
	order := pos_model.Order{
		OrderNo:    utils.OrderNo(time.Now().Format("20060102")),
		TableNo:    params.TableNo,
		StaffId:    c.GetInt("uid"),
		Status:     pos_model.OrderStatusPending,
		Notes:      params.Notes,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]int, 0, len(params.Items))
		for _, item := range params.Items {
			ids = append(ids, item.MenuItemId)
		}

		var menuItems []pos_model.MenuItem
		if err := tx.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
			return err
		}
		menu := make(map[int]pos_model.MenuItem, len(menuItems))
		for _, mi := range menuItems {
			menu[mi.Id] = mi
		}

		var total float64
		lines := make([]pos_model.OrderItem, 0, len(params.Items))
		for _, item := range params.Items {
			mi, ok := menu[item.MenuItemId]
			if !ok {
				return fmt.Errorf("menu item %d not found", item.MenuItemId)
			}
			if mi.Available == 0 {
				return fmt.Errorf("menu item %q is not available", mi.Name)
			}
			lines = append(lines, pos_model.OrderItem{
				MenuItemId: mi.Id,
				Quantity:   item.Quantity,
				Price:      mi.Price,
			})
			total += mi.Price * float64(item.Quantity)
		}
		order.Total = utils.Round2(total)

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderId = order.Id
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		order.Items = lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applies one step of the status machine.
func (s *OrderService) UpdateOrderStatus(params inout.UpdateOrderStatusReq) error {
	var order pos_model.Order
	if err := s.db.Where("id = ?", params.Id).First(&order).Error; err != nil {
		return fmt.Errorf("order not found: %w", err)
	}

	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == params.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, params.Status)
	}

	return s.db.Model(&order).Updates(map[string]interface{}{
		"status":      params.Status,
		"update_time": time.Now(),
	}).Error
}

// GetOrderDetail loads one order with its lines and menu item names.
func (s *OrderService) GetOrderDetail(id int) (*inout.OrderResp, error) {
	var order pos_model.Order
	err := s.db.
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	resp := formatOrder(order)
	return &resp, nil
}

// GetOrderList returns a page of orders, newest first.
func (s *OrderService) GetOrderList(params inout.OrderListReq) (inout.ListPageResp, error) {
	page := max(params.Page, 1)
	pageSize := max(min(params.PageSize, 100), 10)

	query := s.db.Model(&pos_model.Order{}).
		Preload("Items").
		Preload("Items.MenuItem").
		Scopes(
			applyOrderStatusFilter(params.Status),
			applyOrderRangeFilter(params.Start, params.End),
		).
		Order("create_time DESC")

	var total int64
	var data []pos_model.Order
	offset := (page - 1) * pageSize
	if err := query.Count(&total).Offset(offset).Limit(pageSize).Find(&data).Error; err != nil {
		return inout.ListPageResp{}, err
	}

	items := make([]inout.OrderResp, 0, len(data))
	for _, order := range data {
		items = append(items, formatOrder(order))
	}

	return inout.ListPageResp{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	}, nil
}

func formatOrder(order pos_model.Order) inout.OrderResp {
	lines := make([]inout.OrderItemResp, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, inout.OrderItemResp{
			MenuItemId: item.MenuItemId,
			Name:       item.MenuItem.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return inout.OrderResp{
		Id:         order.Id,
		OrderNo:    order.OrderNo,
		TableNo:    order.TableNo,
		Status:     order.Status,
		Total:      order.Total,
		Notes:      order.Notes,
		CreateTime: utils.FormatTime2(order.CreateTime),
		Items:      lines,
	}
}

func applyOrderStatusFilter(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}
}

func applyOrderRangeFilter(start, end string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != "" && end != "" {
			return db.Where("create_time >= ? AND create_time < ?", start, end)
		}
		return db
	}
}
