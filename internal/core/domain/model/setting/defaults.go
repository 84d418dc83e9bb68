package setting

// Defaults are seeded on start-up. Seeding never overwrites a value an admin
// has already changed.
func Defaults() []*Setting {
	defaults := []struct{ key, value, description string }{
		{"shop_name", "JETZ Carwash", "Name printed on receipts and the token board"},
		{"currency_symbol", "₱", "Symbol shown before amounts"},
		{"receipt_footer", "Thank you, drive safe!", "Last line of the printed receipt"},
		{"kiosk_banner", "Take a token and pick your wash", "Greeting on the self-service kiosk"},
	}

	settings := make([]*Setting, 0, len(defaults))
	for _, d := range defaults {
		s, err := NewSetting(d.key, d.value, d.description)
		if err != nil {
			panic(err)
		}
		settings = append(settings, s)
	}
	return settings
}
