package domain

// Платформы игрового каталога
const (
	PlatformVR          = "VR"
	PlatformPlayStation = "PlayStation"
)

// Game represents an entry of the read-only games catalog
type Game struct {
	ID              string
	Name            string
	Description     string
	Platform        string
	ImageURL        string
	DurationMinutes int
	MaxPlayers      int
}

// SampleGames стартовый каталог игр; заливается в БД идемпотентно при старте
var SampleGames = []Game{
	{
		ID:              "1",
		Name:            "Half-Life: Alyx",
		Description:     "Fight the Combine in this immersive VR adventure",
		Platform:        PlatformVR,
		ImageURL:        "https://images.unsplash.com/photo-1657734240343-44afa9402985",
		DurationMinutes: 60,
		MaxPlayers:      1,
	},
	{
		ID:              "2",
		Name:            "Beat Saber",
		Description:     "Rhythmic VR experience with lightsabers",
		Platform:        PlatformVR,
		ImageURL:        "https://images.unsplash.com/photo-1657734240326-8f2ab858a2dd",
		DurationMinutes: 30,
		MaxPlayers:      1,
	},
	{
		ID:              "3",
		Name:            "Astro Bot",
		Description:     "PlayStation VR platformer adventure",
		Platform:        PlatformPlayStation,
		ImageURL:        "https://images.pexels.com/photos/2007647/pexels-photo-2007647.jpeg",
		DurationMinutes: 45,
		MaxPlayers:      1,
	},
	{
		ID:              "4",
		Name:            "Superhot VR",
		Description:     "Time moves only when you move",
		Platform:        PlatformVR,
		ImageURL:        "https://images.unsplash.com/photo-1493497029755-f49c8e9a8bbe",
		DurationMinutes: 45,
		MaxPlayers:      1,
	},
	{
		ID:              "5",
		Name:            "Horizon Call of the Mountain",
		Description:     "PlayStation VR2 exclusive adventure",
		Platform:        PlatformPlayStation,
		ImageURL:        "https://images.unsplash.com/photo-1493496553793-56c1aa2cfcea",
		DurationMinutes: 60,
		MaxPlayers:      1,
	},
}
