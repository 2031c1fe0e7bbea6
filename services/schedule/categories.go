package schedule

// roomCategories maps feed room types onto display categories. A data table
// rather than branching logic; unknown types fall through to the default.
var roomCategories = map[string]string{
	"lecture":    "lecture",
	"seminar":    "seminar",
	"lab":        "lab",
	"studio":     "studio",
	"auditorium": "hall",
	"hall":       "hall",
	"meeting":    "meeting",
	"sports":     "sports",
}

const defaultRoomCategory = "general"

// CategoryFor returns the display category for a feed room type.
func CategoryFor(roomType string) string {
	if cat, ok := roomCategories[roomType]; ok {
		return cat
	}
	return defaultRoomCategory
}
