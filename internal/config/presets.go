package config

// StylePresets maps preset names to writing-style descriptions baked into the
// agent's persona block. Selectable via WithStylePreset.
var StylePresets = map[string]string{
	"academic":   "Formal, precise, and rigorously sourced. Favors careful argumentation over flourish and keeps claims tightly scoped.",
	"business":   "Professional, clear, and logical. Leads with conclusions, keeps sentences short, and writes for decision-makers.",
	"journalism": "Professional, clear, and logical, suited to news writing. Inverted-pyramid structure with the most newsworthy facts first.",
	"casual":     "Relaxed and approachable. Plain words, short paragraphs, and a conversational tone without losing accuracy.",
}

// GetStylePreset returns the style description for the given preset name.
// Returns empty string and false if the preset is not found.
func GetStylePreset(name string) (string, bool) {
	style, ok := StylePresets[name]
	return style, ok
}
