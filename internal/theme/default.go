package theme

// Default returns the stock light theme shipped with the kit.
func Default() Theme {
	return Theme{
		Name: "default",
		Typography: Typography{
			FontSize:   16,
			LineHeight: 24,
		},
		Colors: map[string]string{
			"black":     "#212121",
			"white":     "#ffffff",
			"gray":      "#9e9e9e",
			"primary":   "#2196f3",
			"secondary": "#9c27b0",
			"success":   "#4caf50",
			"warning":   "#ff9800",
			"danger":    "#f44336",
			"info":      "#00bcd4",
		},
		Border: Border{
			Width:  1,
			Radius: 2,
		},
	}
}

// Dark returns a dark variant of the stock theme. The rhythm unit and
// border defaults are shared with Default so components keep the same
// geometry when the palette flips.
func Dark() Theme {
	t := Default()
	t.Name = "dark"
	t.Colors = map[string]string{
		"black":     "#fafafa",
		"white":     "#121212",
		"gray":      "#757575",
		"primary":   "#90caf9",
		"secondary": "#ce93d8",
		"success":   "#a5d6a7",
		"warning":   "#ffcc80",
		"danger":    "#ef9a9a",
		"info":      "#80deea",
	}
	return t
}
