package config

// Development is switched on by MINES_DEVELOPMENT=1 (or true).
func Development() bool {
	return v.GetBool("development")
}
