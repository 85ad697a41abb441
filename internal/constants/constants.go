package constants

// Identifier prefixes, one per record type. IDs look like
// TSK-20240110-153045 (prefix + creation timestamp).
const (
	PrefixProject       = "PRJ"
	PrefixTask          = "TSK"
	PrefixExpense       = "EXP"
	PrefixHabit         = "HBT"
	PrefixNote          = "NTE"
	PrefixCanvaFont     = "CNF"
	PrefixCanvaApp      = "CNA"
	PrefixCanvaIdea     = "CNI"
	PrefixCanvaLink     = "CNL"
	PrefixTransaction   = "NFB"
	PrefixFixedBudget   = "FBD"
	PrefixFixedExpense  = "FEX"
	PrefixStory         = "STY"
	PrefixScene         = "SCN"
	PrefixShayari       = "SHY"
	PrefixRekhtaShayari = "RKT"
)

// DateLayout is the calendar-date format used by every dated field and by
// the recurrence dedup key.
const DateLayout = "2006-01-02"
