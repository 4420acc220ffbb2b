package core

// ReactionEmoji is the fixed set offered by the reaction picker.
var ReactionEmoji = []string{"🙏", "✨", "🌙", "👍", "🎊"}

// ReactionOptions returns a copy of the picker options.
func ReactionOptions() []string {
	out := make([]string, len(ReactionEmoji))
	copy(out, ReactionEmoji)
	return out
}
