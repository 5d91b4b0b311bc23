package catalog

import "github.com/shopspring/decimal"

// Seed returns the bundled demo catalog in its fixed display order
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Premium Laptop Pro",
			Description: "High-performance laptop with 16GB RAM, 512GB SSD, and stunning 4K display. Perfect for professionals and content creators.",
			Price:       decimal.NewFromFloat(1299.99),
			Image:       "assets/products/laptop-1.jpg",
			Category:    "Laptops",
			Stock:       15,
			Rating:      4.8,
			Reviews:     342,
		},
		{
			ID:          2,
			Name:        "Wireless Headphones Elite",
			Description: "Premium noise-cancelling headphones with 30-hour battery life and exceptional audio quality.",
			Price:       decimal.NewFromFloat(299.99),
			Image:       "assets/products/headphones-1.jpg",
			Category:    "Audio",
			Stock:       48,
			Rating:      4.7,
			Reviews:     189,
		},
		{
			ID:          3,
			Name:        "Smartphone X Pro",
			Description: "Latest flagship smartphone with 5G connectivity, triple camera system, and all-day battery life.",
			Price:       decimal.NewFromFloat(899.99),
			Image:       "assets/products/phone-1.jpg",
			Category:    "Phones",
			Stock:       32,
			Rating:      4.9,
			Reviews:     521,
		},
		{
			ID:          4,
			Name:        "RGB Mechanical Keyboard",
			Description: "Professional gaming keyboard with customizable RGB lighting and mechanical switches for precision typing.",
			Price:       decimal.NewFromFloat(159.99),
			Image:       "assets/products/keyboard-1.jpg",
			Category:    "Accessories",
			Stock:       67,
			Rating:      4.6,
			Reviews:     234,
		},
		{
			ID:          5,
			Name:        "Fitness Smartwatch",
			Description: "Advanced fitness tracking smartwatch with heart rate monitor, GPS, and 7-day battery life.",
			Price:       decimal.NewFromFloat(249.99),
			Image:       "assets/products/watch-1.jpg",
			Category:    "Wearables",
			Stock:       41,
			Rating:      4.5,
			Reviews:     167,
		},
		{
			ID:          6,
			Name:        "Wireless Gaming Mouse",
			Description: "Ergonomic wireless mouse with customizable DPI settings and RGB lighting for gaming enthusiasts.",
			Price:       decimal.NewFromFloat(79.99),
			Image:       "assets/products/mouse-1.jpg",
			Category:    "Accessories",
			Stock:       95,
			Rating:      4.7,
			Reviews:     412,
		},
	}
}
