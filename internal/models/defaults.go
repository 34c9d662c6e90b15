package models

// defaultActivityRecords mirrors the legacy starter catalog, which predates
// the isRecurring and days fields.
var defaultActivityRecords = []ActivityRecord{
	{ID: "1", Name: "Sleep", Icon: "😴", Color: "#8b5cf6", Slots: []int{0, 1, 2, 3, 4, 5}},
	{ID: "2", Name: "Work", Icon: "💼", Color: "#3b82f6", Slots: []int{9, 10, 11, 12, 13, 14, 15, 16}},
	{ID: "3", Name: "Sport", Icon: "🏃", Color: "#10b981", Slots: []int{17}},
	{ID: "4", Name: "Reading", Icon: "📚", Color: "#6366f1", Slots: []int{18, 19, 20}},
	{ID: "5", Name: "Chores", Icon: "🧹", Color: "#64748b", Slots: []int{7, 8}},
	{ID: "6", Name: "Reflection", Icon: "🧘", Color: "#ef4444", Slots: []int{6, 21, 22, 23}},
}

// DefaultActivities returns the starter catalog seeded by "daydial init".
func DefaultActivities() []Activity {
	activities := make([]Activity, len(defaultActivityRecords))
	for i, r := range defaultActivityRecords {
		activities[i] = r.Normalize()
	}
	return activities
}
