package entities

// ServicedAreas is the Sunshine Coast suburb list the business covers.
// Enquiries from anywhere else get the out-of-area decline.
var ServicedAreas = []string{
	"Twin Waters", "Maroochydore", "Kuluin", "Forest Glen", "Mons",
	"Buderim", "Alexandra Headland", "Mooloolaba", "Mountain Creek", "Minyama",
}

func InServicedArea(suburb string) bool {
	for _, a := range ServicedAreas {
		if a == suburb {
			return true
		}
	}
	return false
}
