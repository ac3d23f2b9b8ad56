package storage

import (
	"context"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormCalendarEventStore struct {
	db *gorm.DB
}

func NewGormCalendarEventStore(db *gorm.DB) *GormCalendarEventStore {
	return &GormCalendarEventStore{db: db}
}

func (s *GormCalendarEventStore) GetAll(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Add assigns the event id, mirroring the document store it replaces.
func (s *GormCalendarEventStore) Add(ctx context.Context, event models.CalendarEvent) (string, error) {
	event.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return "", err
	}
	return event.ID, nil
}

func (s *GormCalendarEventStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CalendarEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
