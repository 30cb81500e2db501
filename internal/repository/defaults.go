package repository

import "github.com/trhacknon/custom-devices/internal/models"

// DefaultCatalog returns the built-in device catalog
func DefaultCatalog() models.Catalog {
	return models.Catalog{
		Boards: []models.CatalogEntry{
			{Name: "ESP32 DevKit", Price: 25},
			{Name: "ESP32-S3", Price: 35},
			{Name: "ESP32-C3", Price: 18},
			{Name: "LilyGO T-Display S3", Price: 42, Image: "lilygo.jpeg"},
			{Name: "LilyGO T-Deck", Price: 69, Image: "lilygo.jpeg"},
			{Name: "LilyGO T-Pico", Price: 48, Image: "lilygo.jpeg"},
			{Name: "Heltec WiFi LoRa V3", Price: 55},
			{Name: "Heltec CubeCell", Price: 30},
			{Name: "Raspberry Pi Zero 2 W", Price: 60},
			{Name: "Bus Pirate v6", Price: 45},
			{Name: "ESP32 Marauder", Price: 75, Image: "marauder.jpeg"},
		},
		Modules: []models.CatalogEntry{
			{Name: "Écran OLED 0.96\"", Price: 8},
			{Name: "Écran IPS 1.9\"", Price: 12},
			{Name: "GPS NEO-6M", Price: 15},
			{Name: "LoRa SX1276", Price: 17},
			{Name: "Caméra OV2640", Price: 10},
			{Name: "Batterie LiPo 1200mAh", Price: 9},
			{Name: "Batterie 18650", Price: 6},
			{Name: "Chargeur TP4056", Price: 3},
			{Name: "NRF24L01", Price: 4},
		},
		Firmwares: []models.CatalogEntry{
			{Name: "Bruce", Price: 0},
			{Name: "GhostESP", Price: 0},
			{Name: "CapybaraOS", Price: 0},
			{Name: "BjornOS", Price: 0, Image: "bjorn.jpg"},
			{Name: "Pwnagotchi", Price: 0, Image: "pwnagotchi.webp"},
			{Name: "Firmware Bus Pirate", Price: 0},
		},
		Options: []models.CatalogEntry{
			{Name: "Montage + soudure complète", Price: 15},
			{Name: "Boîtier imprimé 3D", Price: 12},
			{Name: "Flash du firmware & tests", Price: 10},
			{Name: "Batterie intégrée & câblage", Price: 7},
		},
	}
}
