package reminder

// Grouped holds the lifecycle partition of an ordered reminder sequence.
// Open reminders always come before paid ones regardless of due date.
type Grouped struct {
	Open []Reminder
	Paid []Reminder
}

// Partition splits an ordered sequence into open followed by paid reminders,
// preserving the relative order within each group. A reminder whose due date
// has elapsed stays in the open group until it is explicitly marked paid.
func Partition(ordered []Reminder) Grouped {
	grouped := Grouped{
		Open: make([]Reminder, 0, len(ordered)),
		Paid: make([]Reminder, 0, len(ordered)),
	}
	for _, r := range ordered {
		if r.IsPaid {
			grouped.Paid = append(grouped.Paid, r)
		} else {
			grouped.Open = append(grouped.Open, r)
		}
	}
	return grouped
}
