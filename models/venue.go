package models

// VenueKey identifies a room across days. Two records with the same key on
// different days describe the same physical room.
type VenueKey struct {
	Building string `json:"building"`
	Room     string `json:"room"`
}

// VenueAvailability holds one room's free intervals for exactly one calendar
// day. A day's full dataset is a slice of these, one entry per room with data
// that day. The engine treats instances as read-only snapshots.
type VenueAvailability struct {
	RoomName     string     `bson:"roomName" json:"roomName"`
	RoomType     string     `bson:"roomType" json:"roomType"`
	BuildingName string     `bson:"buildingName" json:"buildingName"`
	Slots        []TimeSlot `bson:"slots" json:"slots"`
}

// Key returns the room's cross-day identity.
func (v VenueAvailability) Key() VenueKey {
	return VenueKey{Building: v.BuildingName, Room: v.RoomName}
}

// DayAvailability is the per-day record returned by the availability source.
type DayAvailability struct {
	Date  string              `bson:"date" json:"date"` // DateLayout
	Rooms []VenueAvailability `bson:"rooms" json:"rooms"`
}

// FacetValues lists the facet choices offered on the filter surface,
// computed from the full dataset rather than the currently displayed range.
type FacetValues struct {
	RoomTypes []string `json:"roomTypes"`
	Buildings []string `json:"buildings"`
}
