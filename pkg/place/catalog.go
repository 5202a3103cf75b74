package place

var catalog = []Place{
	{
		ID:       "1",
		Title:    "The Whispering Falls",
		Category: Nature,
		Distance: "12km",
		Detour:   "4 min",
		Summary:  "Locals say this hidden waterfall is the most serene spot in the county. A short trail leads you to a view that most tourists speed right past.",
		ImageRef: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
		Moods:    []Mood{"nature", "peaceful", "rainy", "sunshine"},
	},
	{
		ID:       "2",
		Title:    "Grandma's Secret Pie Shop",
		Category: Food,
		Distance: "8km",
		Detour:   "2 min",
		Summary:  "Hidden in a converted garage, this family recipe has been drawing pie pilgrims for three generations. The apple cinnamon is legendary among truckers.",
		ImageRef: "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=400&h=300&fit=crop",
		Moods:    []Mood{"hungry", "cafe", "rainy", "evening"},
	},
	{
		ID:       "3",
		Title:    "The Upside-Down House",
		Category: Quirky,
		Distance: "15km",
		Detour:   "6 min",
		Summary:  "Built by an eccentric artist in 1987, this gravity-defying house sits completely inverted. Visitors say walking through it is like entering another dimension.",
		ImageRef: "https://images.unsplash.com/photo-1554995207-c18c203602cb?w=400&h=300&fit=crop",
		Moods:    []Mood{"adventure", "rainy", "evening", "sunshine"},
	},
	{
		ID:       "4",
		Title:    "Civil War Ghost Bridge",
		Category: History,
		Distance: "20km",
		Detour:   "8 min",
		Summary:  "This 1864 stone bridge witnessed a pivotal battle. Local historians offer impromptu tours, and the sunset views are breathtaking.",
		ImageRef: "https://images.unsplash.com/photo-1518837695005-2083093ee35b?w=400&h=300&fit=crop",
		Moods:    []Mood{"sunset", "evening", "peaceful", "nature"},
	},
	{
		ID:       "5",
		Title:    "Moonlight Diner",
		Category: Food,
		Distance: "5km",
		Detour:   "2 min",
		Summary:  "This 24-hour chrome diner serves the best late-night comfort food. The neon signs reflect beautifully in rainy weather, creating a nostalgic atmosphere.",
		ImageRef: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=300&fit=crop",
		Moods:    []Mood{"rainy", "evening", "hungry", "cafe"},
	},
	{
		ID:       "6",
		Title:    "Sunrise Peak Lookout",
		Category: Nature,
		Distance: "18km",
		Detour:   "7 min",
		Summary:  "A short hike rewards you with panoramic views perfect for catching the sunrise. The golden hour light transforms the entire valley below.",
		ImageRef: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
		Moods:    []Mood{"sunshine", "sunset", "nature", "adventure"},
	},
}

// Catalog returns the built-in places in their fixed order. Each call
// returns fresh copies.
func Catalog() []Place {
	out := make([]Place, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p.Clone())
	}
	return out
}
