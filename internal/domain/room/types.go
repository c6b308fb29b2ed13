package room

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOccupied  Status = "OCCUPIED"
	StatusCleaning  Status = "CLEANING"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusCleaning:
		return true
	default:
		return false
	}
}

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeDouble BedType = "double"
)

func (b BedType) String() string {
	return string(b)
}

func (b BedType) IsValid() bool {
	switch b {
	case BedTypeSingle, BedTypeDouble:
		return true
	default:
		return false
	}
}
