package admin_service

import (
	"errors"
	"fmt"
	"time"

	"resto-go-pos/inout"
	"resto-go-pos/model/pos_model"
	"resto-go-pos/utils"

	"gorm.io/gorm"
)

type ShiftService struct {
	db *gorm.DB
}

func NewShiftService(db *gorm.DB) *ShiftService {
	return &ShiftService{db: db}
}

// ScheduleShift creates a shift. The end time may be left open for clock-out
// style shifts.
func (s *ShiftService) ScheduleShift(params inout.ScheduleShiftReq) (int, error) {
	var staff pos_model.Staff
	if err := s.db.Where("id = ?", params.StaffId).First(&staff).Error; err != nil {
		return 0, fmt.Errorf("staff member not found: %w", err)
	}

	start, err := utils.ParseDateTime(params.StartTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time: %w", err)
	}

	shift := pos_model.Shift{
		StaffId:    params.StaffId,
		StartTime:  start,
		Status:     pos_model.ShiftStatusScheduled,
		Notes:      params.Notes,
		CreateTime: time.Now(),
		UpdateTime: time.Now(),
	}

	if params.EndTime != "" {
		end, err := utils.ParseDateTime(params.EndTime)
		if err != nil {
			return 0, fmt.Errorf("invalid end time: %w", err)
		}
		if !end.After(start) {
			return 0, errors.New("end time must be after start time")
		}
		shift.EndTime = end
	}

	if err := s.db.Create(&shift).Error; err != nil {
		return 0, err
	}
	return shift.Id, nil
}

// CompleteShift closes a shift. The end time defaults to now; once a shift
// is COMPLETED it counts toward labor cost.
func (s *ShiftService) CompleteShift(id int, endTime string) error {
	var shift pos_model.Shift
	if err := s.db.Where("id = ?", id).First(&shift).Error; err != nil {
		return fmt.Errorf("shift not found: %w", err)
	}
	if shift.Status == pos_model.ShiftStatusCompleted {
		return errors.New("shift is already completed")
	}

	end := time.Now()
	if endTime != "" {
		parsed, err := utils.ParseDateTime(endTime)
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}
		end = parsed
	}

	updates := map[string]interface{}{
		"end_time":    end,
		"status":      pos_model.ShiftStatusCompleted,
		"update_time": time.Now(),
	}
	return s.db.Model(&shift).Updates(updates).Error
}

// CancelShift marks a shift cancelled; it no longer counts toward labor.
func (s *ShiftService) CancelShift(id int) error {
	res := s.db.Model(&pos_model.Shift{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      pos_model.ShiftStatusCancelled,
			"update_time": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("shift not found")
	}
	return nil
}

// GetShiftList returns a page of shifts with staff names and worked hours.
func (s *ShiftService) GetShiftList(params inout.ShiftListReq) (inout.ListPageResp, error) {
	page := max(params.Page, 1)
	pageSize := max(min(params.PageSize, 100), 10)

	query := s.db.Model(&pos_model.Shift{}).Preload("Staff").Scopes(
		applyShiftStaffFilter(params.StaffId),
		applyShiftStatusFilter(params.Status),
		applyShiftRangeFilter(params.Start, params.End),
	).Order("start_time DESC")

	var total int64
	var data []pos_model.Shift
	offset := (page - 1) * pageSize
	if err := query.Count(&total).Offset(offset).Limit(pageSize).Find(&data).Error; err != nil {
		return inout.ListPageResp{}, err
	}

	items := make([]inout.ShiftItem, 0, len(data))
	for _, shift := range data {
		hours := 0.0
		if !shift.EndTime.IsZero() {
			hours = shift.EndTime.Sub(shift.StartTime).Hours()
		}
		items = append(items, inout.ShiftItem{
			Id:        shift.Id,
			StaffId:   shift.StaffId,
			StaffName: shift.Staff.Name,
			StartTime: utils.FormatTime2(shift.StartTime),
			EndTime:   utils.FormatTime2(shift.EndTime),
			Status:    shift.Status,
			Hours:     hours,
			Notes:     shift.Notes,
		})
	}

	return inout.ListPageResp{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	}, nil
}

func applyShiftStaffFilter(staffId int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if staffId > 0 {
			return db.Where("staff_id = ?", staffId)
		}
		return db
	}
}

func applyShiftStatusFilter(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}
}

func applyShiftRangeFilter(start, end string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != "" && end != "" {
			return db.Where("start_time >= ? AND start_time < ?", start, end)
		}
		return db
	}
}
