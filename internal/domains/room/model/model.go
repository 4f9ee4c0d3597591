package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID      = "room_id"
	FieldNumber  = "room_number"
	FieldType    = "room_type"
	FieldBedType = "bed_type"
	FieldFloor   = "floor"
)

const (
	TypeRiverView    = "River view"
	TypeStandardView = "Standard view"
	TypeCottage      = "Cottage"

	BedDouble = "Double bed"
	BedTwin   = "Twin bed"
)

type Room struct {
	ID      int    `db:"room_id"     yaml:"id"`
	Number  string `db:"room_number" yaml:"number"`
	Type    string `db:"room_type"   yaml:"type"`
	BedType string `db:"bed_type"    yaml:"bed_type"`
	Floor   int    `db:"floor"       yaml:"floor"`
}
