package models

// AllCategories is the category filter sentinel meaning "no category filter".
const AllCategories = "All"

// OtherCategory is the catch-all label returned when no classifier rule matches.
const OtherCategory = "Other"

// CategoryCount is one row of the category distribution.
type CategoryCount struct {
	Name  string `json:"name" example:"Reach-In"`
	Count int    `json:"count" example:"42"`
}
