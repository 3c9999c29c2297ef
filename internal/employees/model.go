package employees

import "time"

// Note is a dated free-form note appended to an employee record.
type Note struct {
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

// Employee is a staff record with an ordered note history and a 0-5
// performance rating.
type Employee struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Position          string     `json:"position"`
	Client            string     `json:"client"`
	StartDate         time.Time  `json:"startDate"`
	PromotionDate     *time.Time `json:"promotionDate,omitempty"`
	PerformanceRating float64    `json:"performanceRating"`
	Notes             []Note     `json:"notes"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
