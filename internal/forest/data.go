package forest

import "strings"

// Regional ecological model for the Pacific Northwest. Species lists follow
// USFS vegetation zone descriptions for Oregon; outside the covered regions
// the service reports that no detailed data exists rather than guessing.

type speciesZone struct {
	Ecoregion       string
	ForestType      string
	DominantSpecies []string
	CommonSpecies   []string
	Understory      []string
}

var coastalZone = speciesZone{
	Ecoregion:       "Pacific Northwest Coastal Forest",
	ForestType:      "Temperate Rainforest",
	DominantSpecies: []string{"Sitka Spruce", "Western Hemlock", "Western Red Cedar", "Red Alder"},
	CommonSpecies:   []string{"Douglas Fir", "Grand Fir", "Big Leaf Maple", "Oregon Ash"},
	Understory:      []string{"Salmonberry", "Sword Fern", "Salal", "Oregon Grape"},
}

var lowerMontaneZone = speciesZone{
	Ecoregion:       "Western Cascades Lower Montane Forest",
	ForestType:      "Mixed Coniferous-Deciduous Forest",
	DominantSpecies: []string{"Douglas Fir", "Western Hemlock", "Western Red Cedar"},
	CommonSpecies:   []string{"Grand Fir", "Big Leaf Maple", "Red Alder", "Black Cottonwood"},
	Understory:      []string{"Vine Maple", "Oregon Grape", "Sword Fern", "Salal"},
}

var midMontaneZone = speciesZone{
	Ecoregion:       "Western Cascades Mid Montane Forest",
	ForestType:      "Coniferous Forest",
	DominantSpecies: []string{"Douglas Fir", "Noble Fir", "Pacific Silver Fir", "Western Hemlock"},
	CommonSpecies:   []string{"Western White Pine", "Western Red Cedar", "Alaska Yellow Cedar"},
	Understory:      []string{"Huckleberry", "Rhododendron", "Oregon Grape"},
}

var subalpineZone = speciesZone{
	Ecoregion:       "Cascades Subalpine Forest",
	ForestType:      "Subalpine Coniferous Forest",
	DominantSpecies: []string{"Mountain Hemlock", "Subalpine Fir", "Whitebark Pine"},
	CommonSpecies:   []string{"Engelmann Spruce", "Lodgepole Pine", "Alaska Yellow Cedar"},
	Understory:      []string{"Huckleberry", "Mountain Heather", "Beargrass"},
}

var blueMountainsZone = speciesZone{
	Ecoregion:       "Blue Mountains Forest",
	ForestType:      "Dry Coniferous Forest",
	DominantSpecies: []string{"Ponderosa Pine", "Douglas Fir", "Grand Fir"},
	CommonSpecies:   []string{"Western Larch", "Lodgepole Pine", "Quaking Aspen"},
	Understory:      []string{"Snowberry", "Ninebark", "Serviceberry"},
}

var blueMountainsSubalpineZone = speciesZone{
	Ecoregion:       "Blue Mountains Subalpine Forest",
	ForestType:      "Subalpine Coniferous Forest",
	DominantSpecies: []string{"Subalpine Fir", "Engelmann Spruce", "Lodgepole Pine"},
	CommonSpecies:   []string{"Whitebark Pine", "Alpine Larch"},
	Understory:      []string{"Huckleberry", "Grouse Whortleberry"},
}

// mushroomAssociations returns known mycorrhizal and saprophytic partners
// for a tree species. This is a static lookup, not a network call.
func mushroomAssociations(species string) []string {
	switch {
	case species == "Douglas Fir":
		return []string{"Chanterelle", "King Bolete", "Matsutake", "Coral Fungus"}
	case species == "Western Hemlock":
		return []string{"Chanterelle", "Lobster Mushroom", "Hedgehog Mushroom"}
	case species == "Sitka Spruce" || species == "Engelmann Spruce":
		return []string{"King Bolete", "Matsutake", "Russula"}
	case strings.Contains(species, "Pine"):
		return []string{"King Bolete", "Matsutake", "Slippery Jack", "Saffron Milk Cap"}
	case strings.Contains(species, "Fir"):
		return []string{"Chanterelle", "King Bolete", "Matsutake"}
	case species == "Red Alder" || species == "Big Leaf Maple":
		return []string{"Oyster Mushroom", "Lion's Mane", "Morel"}
	case species == "Western Red Cedar":
		return []string{"Lobster Mushroom", "Cauliflower Mushroom"}
	}
	return nil
}
