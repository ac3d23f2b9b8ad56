package models

// LessonType is static pricing configuration, not derived from bookings.
type LessonType struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	PriceCents      int64    `json:"price_cents"`
	DurationMinutes int      `json:"duration_minutes"`
	Times           []string `json:"times"`
}

var hourlyTimes = []string{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
}

var lessonTypes = []LessonType{
	{Key: "private", Name: "Private Lesson", PriceCents: 8000, DurationMinutes: 60, Times: hourlyTimes},
	{Key: "semi-private", Name: "Semi-Private", PriceCents: 5000, DurationMinutes: 60, Times: hourlyTimes},
	{Key: "clinic", Name: "Clinic", PriceCents: 3500, DurationMinutes: 90, Times: []string{"Mon 6:00 PM", "Wed 6:00 PM", "Sat 9:00 AM", "Sat 2:00 PM"}},
}

// LessonTypes returns the catalog in display order.
func LessonTypes() []LessonType {
	return lessonTypes
}

func LessonTypeByKey(key string) (LessonType, bool) {
	for _, lt := range lessonTypes {
		if lt.Key == key {
			return lt, true
		}
	}
	return LessonType{}, false
}
