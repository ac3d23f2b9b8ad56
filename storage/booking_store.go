package storage

import (
	"context"

	"github.com/alexsterin2005-wq/amtennis/models"
	"gorm.io/gorm"
)

// GormBookingStore persists bookings in Postgres, keyed by the booking id.
// A unique index on (coach, date, time where status <> 'cancelled') would close
// the check-then-write race described in the service layer; it is deliberately
// not enabled so the store matches the original single-writer contract.
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) GetAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) Add(ctx context.Context, booking models.Booking) error {
	return s.db.WithContext(ctx).Create(&booking).Error
}

func (s *GormBookingStore) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormBookingStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
