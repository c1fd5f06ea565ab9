package web

// languageColors maps language names to the hex colors GitHub's own language
// bar uses (the linguist palette).
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"TypeScript": "#3178c6",
	"C++":        "#f34b7d",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"CSS":        "#663399",
	"HTML":       "#e34c26",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"C#":         "#178600",
	"Shell":      "#89e051",
	"C":          "#555555",
	"Dart":       "#00B4AB",
	"Elixir":     "#6e4a7e",
	"Haskell":    "#5e5086",
	"Lua":        "#000080",
	"Scala":      "#c22d40",
	"Vue":        "#41b883",
	"Zig":        "#ec915c",
}

// fallbackLanguageColor is the neutral gray used for languages outside the table.
const fallbackLanguageColor = "#8b949e"

// LanguageColor returns the display color for a language, falling back to a
// neutral gray for languages not in the table.
func LanguageColor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return fallbackLanguageColor
}
