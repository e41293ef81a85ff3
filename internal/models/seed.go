package models

// DefaultSchedule returns the seeded trip used on first run and after a
// reset. Day ids are fixed; days are not user-creatable.
func DefaultSchedule() []DaySchedule {
	return []DaySchedule{
		{
			ID:        "day1",
			DateLabel: "12/20 Fri.",
			DayLabel:  "Day 1",
			Items: []ItineraryItem{
				{ID: "d1-flight-out", StartTime: "06:45", EndTime: "10:00", Activity: "Flight: TPE → FUK", Location: "Taoyuan / Fukuoka Airport", Category: CategoryTransport},
				{ID: "d1-checkin", StartTime: "10:45", EndTime: "12:00", Activity: "Immigration, luggage, drop bags at hotel", Location: "Downtown Fukuoka hotel", Category: CategoryTransport},
				{ID: "d1-lunch", StartTime: "12:00", EndTime: "13:30", Activity: "Lunch: Hakata ramen", Location: "Around Hakata Station", Category: CategoryFood},
				{ID: "d1-coffee", StartTime: "13:30", EndTime: "14:30", Activity: "Coffee: REC COFFEE", Location: "REC COFFEE Hakata", Category: CategoryFood},
				{ID: "d1-merch", StartTime: "14:30", EndTime: "18:00", Activity: "Head to PayPay Dome, buy merch", Location: "PayPay Dome", Category: CategoryShopping},
				{ID: "d1-concert", StartTime: "18:00", EndTime: "21:30", Activity: "Concert (Day 1)", Location: "PayPay Dome", Category: CategoryConcert},
				{ID: "d1-snack", StartTime: "21:30", EndTime: "23:00", Activity: "Late snack: Christmas market", Location: "JR Hakata Station plaza", Category: CategoryFood},
				{ID: "d1-return", StartTime: "23:00", EndTime: "23:30", Activity: "Back to hotel", Location: "Downtown Fukuoka hotel", Category: CategoryTransport},
			},
		},
		{
			ID:        "day2",
			DateLabel: "12/21 Sat.",
			DayLabel:  "Day 2",
			Items: []ItineraryItem{
				{ID: "d2-breakfast", StartTime: "10:00", EndTime: "11:30", Activity: "Breakfast & coffee: Stereo Coffee", Location: "Yakuin / Watanabe-dori", Category: CategoryFood},
				{ID: "d2-lunch", StartTime: "12:00", EndTime: "13:30", Activity: "Lunch: Hakata mizutaki hot pot", Location: "Hakata", Category: CategoryFood},
				{ID: "d2-tower", StartTime: "15:30", EndTime: "16:30", Activity: "Fukuoka Tower", Location: "Fukuoka Tower", Category: CategoryActivity},
				{ID: "d2-concert", StartTime: "18:00", EndTime: "21:30", Activity: "Concert (Day 2)", Location: "PayPay Dome", Category: CategoryConcert},
				{ID: "d2-snack", StartTime: "21:30", EndTime: "22:30", Activity: "Light snack or straight back to hotel", Location: "Downtown Fukuoka", Category: CategoryFood},
			},
		},
		{
			ID:        "day3",
			DateLabel: "12/22 Mon.",
			DayLabel:  "Day 3",
			Items: []ItineraryItem{
				{ID: "d3-breakfast", StartTime: "09:00", EndTime: "10:00", Activity: "Breakfast: FUGLEN Fukuoka", Location: "FUGLEN FUKUOKA", Category: CategoryFood},
				{ID: "d3-bakery", StartTime: "10:00", EndTime: "10:30", Activity: "Pick up mentaiko bread", Location: "Full Full Tenjin", Category: CategoryFood},
				{ID: "d3-tenjin", StartTime: "10:30", EndTime: "12:00", Activity: "Tenjin shopping & Blue Bottle Coffee", Location: "Tenjin", Category: CategoryShopping},
				{ID: "d3-popup", StartTime: "13:00", EndTime: "13:40", Activity: "Pop-up store (timed slot)", Location: "Tenjin PARCO", Category: CategoryShopping},
				{ID: "d3-lunch", StartTime: "14:00", EndTime: "15:00", Activity: "Lunch: local tonkatsu or hamburg steak", Location: "Around Tenjin", Category: CategoryFood},
				{ID: "d3-shrine", StartTime: "15:00", EndTime: "16:00", Activity: "Kushida Shrine & Hakata folk museum", Location: "Gion / Hakata", Category: CategoryActivity},
				{ID: "d3-tea", StartTime: "16:00", EndTime: "17:00", Activity: "Tea and powder shopping", Location: "Hakata Hankyu B1", Category: CategoryShopping},
				{ID: "d3-castle", StartTime: "17:00", EndTime: "18:30", Activity: "Fukuoka Castle ruins / Maizuru Park", Location: "Maizuru Park", Category: CategoryActivity},
				{ID: "d3-garden", StartTime: "18:30", EndTime: "20:00", Activity: "Ohori Park Japanese garden", Location: "Ohori Park", Category: CategoryActivity},
				{ID: "d3-gyoza", StartTime: "20:00", EndTime: "21:30", Activity: "Late snack: Hakata bite-size gyoza", Location: "Daimyo / Harukichi", Category: CategoryFood},
			},
		},
		{
			ID:        "day4",
			DateLabel: "12/23 Tues.",
			DayLabel:  "Day 4",
			Items: []ItineraryItem{
				{ID: "d4-breakfast", StartTime: "08:00", EndTime: "09:30", Activity: "Breakfast: robata (reservation)", Location: "Ropponmatsu", Category: CategoryFood},
				{ID: "d4-shopping", StartTime: "10:30", EndTime: "12:30", Activity: "Local goods and sweets", Location: "Yakuin / Imaizumi", Category: CategoryShopping},
				{ID: "d4-lunch", StartTime: "12:30", EndTime: "14:00", Activity: "Lunch: gyukatsu or hamburg steak", Location: "Yakuin / Watanabe-dori", Category: CategoryFood},
				{ID: "d4-souvenirs", StartTime: "14:00", EndTime: "17:00", Activity: "Final souvenir run", Location: "JR Hakata City / HAKATA DEITOS", Category: CategoryShopping},
				{ID: "d4-flight-home", StartTime: "20:55", EndTime: "22:35", Activity: "Flight: FUK → TPE", Location: "Fukuoka Airport / Taoyuan", Category: CategoryTransport},
			},
		},
	}
}
