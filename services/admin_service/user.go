package admin_service

import (
	"errors"
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/pkg/security"
	"resto-go-pos/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// AddUser creates an account. Only admins may create other admins.
func (s *UserService) AddUser(c *gin.Context, params inout.AddUserReq) (int, error) {
	callerType := c.GetInt("type")
	if callerType != pos_model.UserTypeAdmin && callerType != pos_model.UserTypeManager {
		return 0, errors.New("no permission to create users")
	}
	if params.UserType == pos_model.UserTypeAdmin && callerType != pos_model.UserTypeAdmin {
		return 0, errors.New("only admins can create admin accounts")
	}
	if params.UserType == 0 {
		params.UserType = pos_model.UserTypeStaff
	}

	hash, err := security.HashPassword(params.Password)
	if err != nil {
		return 0, err
	}

	user := pos_model.User{
		Username:   params.Username,
		Password:   hash,
		UserType:   params.UserType,
		Phone:      params.Phone,
		Email:      params.Email,
		Avatar:     params.Avatar,
		Enable:     params.Enable,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.Id, nil
}

// UpdateUser updates the mutable account fields.
func (s *UserService) UpdateUser(c *gin.Context, params inout.UpdateUserReq) (int, error) {
	callerType := c.GetInt("type")
	if callerType != pos_model.UserTypeAdmin && callerType != pos_model.UserTypeManager {
		return 0, errors.New("no permission to update users")
	}

	var user pos_model.User
	if err := s.db.Where("id = ?", params.Id).First(&user).Error; err != nil {
		return 0, fmt.Errorf("user not found: %w", err)
	}

	updates := map[string]interface{}{
		"username":    params.Username,
		"user_type":   params.UserType,
		"phone":       params.Phone,
		"email":       params.Email,
		"avatar":      params.Avatar,
		"enable":      params.Enable,
		"update_time": time.Now(),
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return 0, err
	}
	return params.Id, nil
}

// DeleteUsers removes accounts by id.
func (s *UserService) DeleteUsers(c *gin.Context, ids []int) error {
	if c.GetInt("type") != pos_model.UserTypeAdmin {
		return errors.New("no permission to delete users")
	}
	return s.db.Where("id IN ?", ids).Delete(&pos_model.User{}).Error
}

// GetUserDetail loads one account.
func (s *UserService) GetUserDetail(id int) (*pos_model.User, error) {
	var user pos_model.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserList returns a page of accounts, optionally filtered by username.
func (s *UserService) GetUserList(params inout.ListpageReq) (inout.ListPageResp, error) {
	normalizePagination(&params)

	query := s.db.Model(&pos_model.User{}).Scopes(applyUsernameSearch(params.Search))

	var total int64
	var data []pos_model.User
	offset := (params.Page - 1) * params.PageSize
	if err := query.Count(&total).Order("id DESC").Offset(offset).Limit(params.PageSize).Find(&data).Error; err != nil {
		return inout.ListPageResp{}, err
	}

	items := make([]inout.UserItem, 0, len(data))
	for _, u := range data {
		items = append(items, inout.UserItem{
			Id:         u.Id,
			Username:   u.Username,
			UserType:   u.UserType,
			Phone:      u.Phone,
			Email:      u.Email,
			Avatar:     u.Avatar,
			Enable:     u.Enable,
			CreateTime: utils.FormatTime2(u.CreateTime),
			UpdateTime: utils.FormatTime2(u.UpdateTime),
		})
	}

	return inout.ListPageResp{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    items,
	}, nil
}

func applyUsernameSearch(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search != "" {
			return db.Where("username LIKE ?", "%"+search+"%")
		}
		return db
	}
}
