package models

// NextDayCutoffHour is the pickup hour-of-day (24h clock) at or after which
// an order rolls over to the next-day delivery cycle.
const NextDayCutoffHour = 15

// DefaultNextDayCustomers always ship on the next-day cycle regardless of
// pickup hour. Matching is exact and case-sensitive.
var DefaultNextDayCustomers = []string{
	"The Whole Truth Foods",
	"ZISHTA TRADITIONS PRIVATE LIMITED",
	"Assembly Curefit",
}

// DefaultHubs is the curated list of micro-warehouse hubs reported in the
// hub-wise breakdown tables. Hubs outside this list are not reported.
var DefaultHubs = []string{
	"Banashankari [ BH Micro warehouse ]",
	"Hebbal [ BH Micro warehouse ]",
	"Mahadevapura [ BH Micro warehouse ]",
	"Koramangala NGV [ BH Micro warehouse ]",
	"Chandra Layout [ BH Micro warehouse ]",
	"Kudlu [ BH Micro warehouse ]",
}

// DefaultCustomers is the curated list of customers reported in the
// customer-wise breakdown tables.
var DefaultCustomers = []string{
	"WESTSIDE UNIT OF TRENT LIMITED",
	"Herbalife Nutrition",
	"krishna ayurved",
	"Supertails",
	"ZISHTA TRADITIONS PRIVATE LIMITED",
	"The Whole Truth Foods",
	"Koskii",
	"Mokobara",
	"TATA CLiQ",
	"Ferns N Petals",
	"Curefit",
	"Assembly",
	"BHAWAR SALES CORPORATION",
	"WITBRAN",
}
