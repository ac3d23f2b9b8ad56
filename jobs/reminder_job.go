package jobs

import (
	"context"
	"log"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/alexsterin2005-wq/amtennis/notifications"
	"github.com/alexsterin2005-wq/amtennis/services"
)

// ReminderJob emails clients the evening before their lesson. Best effort,
// like every other notification.
type ReminderJob struct {
	store    services.BookingStore
	notifier services.Notifier
	nowFn    func() time.Time
}

func NewReminderJob(store services.BookingStore, notifier services.Notifier) *ReminderJob {
	return &ReminderJob{store: store, notifier: notifier, nowFn: services.AcademyNow}
}

func (j *ReminderJob) SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := j.nowFn().AddDate(0, 0, 1).Format("2006-01-02")
	bookings, err := j.store.GetAll(ctx)
	if err != nil {
		log.Printf("Error checking for tomorrow's lessons: %v", err)
		return
	}

	sent := 0
	for _, b := range bookings {
		if b.Status != models.StatusConfirmed || b.Date != tomorrow {
			continue
		}
		log.Printf("Sending reminder for booking %s", b.ID)
		if j.notifier.Send(ctx, notifications.NewReminderParams(b)) {
			sent++
		}
	}
	if sent > 0 {
		log.Printf("✅ Sent %d lesson reminders for %s", sent, tomorrow)
	}
}
