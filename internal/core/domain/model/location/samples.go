package location

// Sample locations.
var (
	Stockholm  = mustNewLocation("SESTO", "Stockholm")
	Melbourne  = mustNewLocation("AUMEL", "Melbourne")
	Hongkong   = mustNewLocation("CNHKG", "Hongkong")
	Hamburg    = mustNewLocation("DEHAM", "Hamburg")
	Chicago    = mustNewLocation("USCHI", "Chicago")
	Shanghai   = mustNewLocation("CNSHA", "Shanghai")
	Rotterdam  = mustNewLocation("NLRTM", "Rotterdam")
	Gothenburg = mustNewLocation("SEGOT", "Gothenburg")
	Hangzhou   = mustNewLocation("CNHGH", "Hangzhou")
	Gdansk     = mustNewLocation("PLGDN", "Gdansk")
	Tokyo      = mustNewLocation("JNTKO", "Tokyo")
	Helsinki   = mustNewLocation("FIHEL", "Helsinki")
	NewYork    = mustNewLocation("USNYC", "New York")
)

func mustNewLocation(code, name string) Location {
	unLocode, err := NewUnLocode(code)
	if err != nil {
		panic(err)
	}
	l, err := NewLocation(unLocode, name)
	if err != nil {
		panic(err)
	}
	return l
}
