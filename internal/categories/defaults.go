package categories

// Default returns the built-in green category list. Workspaces may override
// it with their own YAML asset.
func Default() Set {
	return New(defaultNames())
}

func defaultNames() []string {
	return []string{
		"public transport",
		"bike sharing",
		"car sharing",
		"ev charging",
		"second-hand",
		"repair services",
		"farmers market",
		"plant-based food",
		"eco products",
		"recycling",
		"charity",
	}
}
