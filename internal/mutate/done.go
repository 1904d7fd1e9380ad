package mutate

import "todo-cli/internal/model"

type SetDoneResult struct {
	Updated []*model.Item
	// Missing lists requested numbers with no matching item. Items that were
	// found are still updated; the caller reports the misses.
	Missing []int
}

// SetDone marks each requested item done (or not done). Lookup misses never
// abort the batch: every valid number is applied and the misses are collected
// in the result. Numbers and section membership are untouched.
func SetDone(d *model.Document, numbers []int, done bool) SetDoneResult {
	var res SetDoneResult
	for _, n := range numbers {
		it := d.FindItem(n)
		if it == nil {
			res.Missing = append(res.Missing, n)
			continue
		}
		if it.Done != done {
			it.Done = done
			it.Invalidate()
		}
		res.Updated = append(res.Updated, it)
	}
	return res
}
