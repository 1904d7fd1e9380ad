package mutate

import (
	"errors"
	"reflect"
	"testing"

	"todo-cli/internal/doc"
)

func TestAddAssignsNextNumber(t *testing.T) {
	t.Parallel()

	d := doc.Parse(" 9  ⬜ write spec\n11  ⬜ add tags\n")

	res, err := Add(d, "buy milk #errands", "")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if res.Item.Number != 12 {
		t.Fatalf("number = %d, want 12", res.Item.Number)
	}
	if res.Item.Done {
		t.Fatalf("new item must start not done")
	}
	if got := doc.ExtractTags(res.Item.Text); !reflect.DeepEqual(got, []string{"errands"}) {
		t.Fatalf("tags = %#v, want [errands]", got)
	}
}

func TestAddMonotonic(t *testing.T) {
	t.Parallel()

	d := doc.Parse("")
	prevMax := 0
	for i := 0; i < 5; i++ {
		res, err := Add(d, "task", "")
		if err != nil {
			t.Fatalf("Add error: %v", err)
		}
		if res.Item.Number <= prevMax {
			t.Fatalf("number %d not greater than previous max %d", res.Item.Number, prevMax)
		}
		prevMax = res.Item.Number
	}
	assertUniqueNumbers(t, d)
}

func TestAddEmptyTextRejected(t *testing.T) {
	t.Parallel()

	d := doc.Parse("")
	_, err := Add(d, "   ", "")
	var invalid InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if len(d.Items()) != 0 {
		t.Fatalf("failed add must not modify the document")
	}
}

func TestAddToNamedSection(t *testing.T) {
	t.Parallel()

	d := doc.Parse("# Work\n1  ⬜ report\n## Errands\n2  ⬜ post office\n")

	res, err := Add(d, "review PR", "Work")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if res.Section.Name() != "Work" {
		t.Fatalf("section = %q, want Work", res.Section.Name())
	}

	// Unknown section names create a new section at the end.
	res2, err := Add(d, "water plants", "Home")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if res2.Section.Heading != "## Home" {
		t.Fatalf("heading = %q", res2.Section.Heading)
	}
	if d.LastSection() != res2.Section {
		t.Fatalf("new section must be appended last")
	}
}

func TestAddDefaultsToLastSection(t *testing.T) {
	t.Parallel()

	d := doc.Parse("1  ⬜ loose\n# Work\n2  ⬜ report\n")
	res, err := Add(d, "new task", "")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if res.Section.Name() != "Work" {
		t.Fatalf("expected append to last section, got %q", res.Section.Name())
	}
}
