package mutate

import "todo-cli/internal/model"

type RenumberResult struct {
	// Changed counts items whose number actually moved.
	Changed int
	Total   int
}

// Renumber reassigns numbers in document order starting at 1, closing the
// gaps left by moves. It is an explicit maintenance pass, never run by the
// other operations. All items re-render canonically afterwards so the whole
// file ends up uniformly aligned.
func Renumber(d *model.Document) RenumberResult {
	var res RenumberResult
	next := 1
	for _, it := range d.Items() {
		res.Total++
		if it.Number != next {
			it.Number = next
			res.Changed++
		}
		it.Invalidate()
		next++
	}
	return res
}
