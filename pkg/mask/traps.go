package mask

// StripCaretTraps removes caret trap markers and records, for each marker, the
// index it would occupy in the stripped slice. Consecutive markers share an index.
func StripCaretTraps(slots []Slot) ([]Slot, []int) {
	stripped := make([]Slot, 0, len(slots))
	var traps []int
	for _, s := range slots {
		if s.IsCaretTrap() {
			traps = append(traps, len(stripped))
			continue
		}
		stripped = append(stripped, s)
	}
	return stripped, traps
}
