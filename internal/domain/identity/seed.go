package identity

// SeedCredentials returns the demo credential records. The secrets exist
// only to validate login attempts in this offline demo domain and are
// never exposed past the session store boundary.
func SeedCredentials() []Credential {
	return []Credential{
		{
			ID:          "8f14e45f-ceea-467f-a9d4-1c4a5b6c7d01",
			Email:       "admin@shopverse.com",
			Secret:      "admin123",
			DisplayName: "Admin User",
			Admin:       true,
		},
		{
			ID:          "8f14e45f-ceea-467f-a9d4-1c4a5b6c7d02",
			Email:       "user@shopverse.com",
			Secret:      "user123",
			DisplayName: "John Doe",
			Admin:       false,
		},
	}
}
