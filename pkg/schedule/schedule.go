package schedule

// Entry is one recurring weekly class occurrence. Multiple entries may share
// a weekday and time (parallel classes across academic years); the service
// groups them and never deduplicates.
type Entry struct {
	Weekday    int    `json:"weekday"` // 0 = Sunday
	Time       string `json:"time"`
	Year       int    `json:"year"` // academic year, 1-5
	Discipline string `json:"discipline"`
	Professor  string `json:"professor,omitempty"`
	Room       string `json:"room,omitempty"`
	Code       string `json:"code,omitempty"`
}

// AllYears is the filter value that selects every academic year.
const AllYears = 0

// YearColor maps an academic year to its accent color.
func YearColor(year int) string {
	switch year {
	case 1:
		return "green"
	case 2:
		return "blue"
	case 3:
		return "purple"
	case 4:
		return "orange"
	case 5:
		return "red"
	default:
		return "gray"
	}
}
