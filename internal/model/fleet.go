package model

import "strconv"

// DisplayFleet holds display-ready data for a single row in the fleets table.
type DisplayFleet struct {
	ID                int64
	Name              string
	Slug              string
	DeviceType        string
	OnlineDeviceCount int
	TotalDeviceCount  int
}

// Column keys, in the order the fleets table shows them.
const (
	ColID                = "id"
	ColName              = "name"
	ColSlug              = "slug"
	ColDeviceType        = "deviceType"
	ColOnlineDeviceCount = "onlineDeviceCount"
	ColTotalDeviceCount  = "totalDeviceCount"
)

// Column names a row field and the header shown for it.
type Column struct {
	Key   string
	Title string
}

// FleetColumns is the column set rendered by the fleets and apps commands.
var FleetColumns = []Column{
	{Key: ColID, Title: "ID"},
	{Key: ColName, Title: "NAME"},
	{Key: ColSlug, Title: "SLUG"},
	{Key: ColDeviceType, Title: "DEVICE TYPE"},
	{Key: ColOnlineDeviceCount, Title: "ONLINE DEVICES"},
	{Key: ColTotalDeviceCount, Title: "DEVICE COUNT"},
}

// Cell returns the formatted value for key. ok is false for unknown keys.
func (f DisplayFleet) Cell(key string) (value string, ok bool) {
	switch key {
	case ColID:
		return strconv.FormatInt(f.ID, 10), true
	case ColName:
		return f.Name, true
	case ColSlug:
		return f.Slug, true
	case ColDeviceType:
		return f.DeviceType, true
	case ColOnlineDeviceCount:
		return strconv.Itoa(f.OnlineDeviceCount), true
	case ColTotalDeviceCount:
		return strconv.Itoa(f.TotalDeviceCount), true
	default:
		return "", false
	}
}
