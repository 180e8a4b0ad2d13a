package professional

// Fixed aggregate limits. These are invariants, not configuration.
const (
	MaxProfessions = 3
	MaxServices    = 10

	MaxNameLength        = 100
	MaxDocumentIDLength  = 20
	MaxPhoneNumberLength = 20
	MaxEmailLength       = 100

	MaxStreetLength     = 200
	MaxCityLength       = 100
	MaxStateLength      = 100
	MaxPostalCodeLength = 20

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)
