package request

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	FindAll(ctx context.Context, employeeID string) ([]Request, error)
	FindByID(ctx context.Context, id int64) (*Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Request, error)
	FindDuplicate(ctx context.Context, employeeID string, from, to time.Time) (*Request, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]Request, error) {
	var requests []Request
	db := r.db.WithContext(ctx)
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	// Rows missing a timestamp sort as if submitted now, i.e. first.
	err := db.Order("COALESCE(submitted_at, CURRENT_TIMESTAMP) DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (*Request, error) {
	res := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// FindDuplicate returns the first non-rejected request with the same
// employee id and exact date span, or nil when there is none. This is a
// best-effort pre-check, not an exclusivity guarantee: there is no unique
// constraint behind it, and two concurrent submissions can both pass.
func (r *repository) FindDuplicate(ctx context.Context, employeeID string, from, to time.Time) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("from_date = ?", from).
		Where("to_date = ?", to).
		Where("status <> ?", StatusRejected).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}
