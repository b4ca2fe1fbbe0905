package catalog

import "github.com/fooddelivery-demo/storefront/pkg/gateway"

// Hardcoded fallback data served when the restaurant service is down. The
// storefront keeps rendering something instead of an error page.

func sampleRestaurants() []gateway.Restaurant {
	return []gateway.Restaurant{
		{
			ID:          1,
			Name:        "Restoran Padang Sederhana",
			CuisineType: "Padang",
			Address:     "Jl. Merdeka No. 123, Jakarta",
			IsOpen:      true,
		},
		{
			ID:          2,
			Name:        "Warung Jawa Timur",
			CuisineType: "Jawa",
			Address:     "Jl. Sudirman No. 45, Jakarta",
			IsOpen:      true,
		},
		{
			ID:          3,
			Name:        "Seafood Laut Biru",
			CuisineType: "Seafood",
			Address:     "Jl. Pantai Indah No. 67, Jakarta",
			IsOpen:      true,
		},
	}
}

func sampleRestaurant(id int64) gateway.Restaurant {
	return gateway.Restaurant{
		ID:          id,
		Name:        "Restoran Padang Sederhana",
		CuisineType: "Padang",
		Address:     "Jl. Merdeka No. 123, Jakarta",
		Phone:       "021-1234567",
		IsOpen:      true,
		Menu:        sampleMenu(),
	}
}

func sampleMenu() []gateway.MenuItem {
	return []gateway.MenuItem{
		{
			ID:          1,
			Name:        "Rendang",
			Description: "Daging sapi dimasak dengan bumbu rempah khas Padang",
			Price:       35000,
			Category:    "Main Course",
			IsAvailable: true,
		},
		{
			ID:          2,
			Name:        "Ayam Pop",
			Description: "Ayam kampung dimasak dengan bumbu khas",
			Price:       28000,
			Category:    "Main Course",
			IsAvailable: true,
		},
		{
			ID:          3,
			Name:        "Gulai Ikan",
			Description: "Ikan kakap dalam kuah gulai yang gurih",
			Price:       32000,
			Category:    "Main Course",
			IsAvailable: true,
		},
		{
			ID:          4,
			Name:        "Es Teh Manis",
			Description: "Minuman segar untuk teman makan",
			Price:       8000,
			Category:    "Minuman",
			IsAvailable: true,
		},
	}
}
