package itinerary

import (
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// SampleTrip returns the built-in demo itinerary used when no trip
// document is given.
func SampleTrip() domain.Trip {
	day1 := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	return domain.Trip{
		ID:        "trip-1",
		Title:     "Weekend in Tokyo",
		StartDate: day1,
		Days: []domain.Day{
			{
				ID:    "day-1",
				Date:  day1,
				Label: "Day 1",
				Stops: []domain.Stop{
					{
						ID: "s1", Name: "Arrive at Narita Airport", Category: domain.CategoryTransport,
						StartTime: domain.NewClock(10, 0), DurationMin: 60,
						TicketInfo: "Flight JL123", Remarks: "Pick up pocket WiFi at terminal", Expenses: "¥2,000",
					},
					{
						ID: "s2", Name: "Check-in Hotel Shinjuku", Category: domain.CategoryHotel,
						StartTime: domain.DefaultStartTime, DurationMin: 45,
						Expenses: "¥15,000", ExternalLink: "https://maps.google.com/?q=Shinjuku+Hotel",
					},
					{
						ID: "s3", Name: "Ramen Lunch", Category: domain.CategoryFood,
						StartTime: domain.DefaultStartTime, DurationMin: 60, Expenses: "¥1,200",
					},
					{
						ID: "s4", Name: "Meiji Jingu Shrine", Category: domain.CategorySight,
						StartTime: domain.DefaultStartTime, DurationMin: 90, Expenses: "Free",
					},
					{
						ID: "s5", Name: "Shibuya Crossing", Category: domain.CategorySight,
						StartTime: domain.DefaultStartTime, DurationMin: 60,
					},
				},
			},
			{
				ID:    "day-2",
				Date:  day2,
				Label: "Day 2",
				Stops: []domain.Stop{
					{
						ID: "s6", Name: "Breakfast at Tsukiji", Category: domain.CategoryFood,
						StartTime: domain.NewClock(8, 0), DurationMin: 90, Expenses: "¥3,500",
					},
					{
						ID: "s7", Name: "TeamLab Planets", Category: domain.CategorySight,
						StartTime: domain.DefaultStartTime, DurationMin: 120,
						TicketInfo: "QR Code saved in gallery", Expenses: "¥3,200",
					},
				},
			},
		},
	}
}
