package mutate

import (
	"strings"

	"todo-cli/internal/model"
)

type MovedItem struct {
	OldNumber int
	NewNumber int
	Item      *model.Item
}

type MoveResult struct {
	Moved []MovedItem
	// Missing lists requested numbers absent from the source document.
	// The other items still move.
	Missing []int
}

// Move removes each requested item (with its attached notes) from src and
// appends it to dst, renumbered past dst's current maximum in the order the
// numbers were requested. The freed numbers in src are not reassigned; a
// renumber pass is a separate, explicit operation.
//
// Both documents are mutated in memory only; the caller writes dst before src
// so a failed write cannot drop an item.
func Move(src, dst *model.Document, numbers []int, section string) MoveResult {
	sec := dst.LastSection()
	if name := strings.TrimSpace(section); name != "" {
		sec = dst.FindSection(name)
		if sec == nil {
			sec = &model.Section{Heading: "## " + name}
			dst.Sections = append(dst.Sections, sec)
		}
	}

	var res MoveResult
	for _, n := range numbers {
		it := src.RemoveItem(n)
		if it == nil {
			res.Missing = append(res.Missing, n)
			continue
		}
		old := it.Number
		it.Number = dst.MaxNumber() + 1
		it.Invalidate()
		sec.Entries = append(sec.Entries, it)
		dst.TrailingNewline = true
		res.Moved = append(res.Moved, MovedItem{OldNumber: old, NewNumber: it.Number, Item: it})
	}
	return res
}
