package screen_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/go-ports/zoo/internal/models"
)

// TestProperty_CRUDMatchesReferenceModel drives the camel screen with random
// create/delete/modify scripts and compares the collection with a plain slice
// model after every run.
func TestProperty_CRUDMatchesReferenceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		type camel struct {
			name  string
			speed int
		}
		var want []camel

		pool := []string{"Bob", "Ann"}
		n := rapid.IntRange(0, 12).Draw(t, "ops")
		var lines []string
		for i := range n {
			op := rapid.SampledFrom([]string{"create", "delete", "modify"}).Draw(t, fmt.Sprintf("op-%d", i))
			name := rapid.SampledFrom(pool).Draw(t, fmt.Sprintf("name-%d", i))
			idx := slices.IndexFunc(want, func(c camel) bool { return c.name == name })
			switch op {
			case "create":
				lines = append(lines, "2", name, "1", "c", fmt.Sprint(i), "d")
				want = append(want, camel{name: name, speed: i})
			case "delete":
				lines = append(lines, "3", name)
				if idx >= 0 {
					want = slices.Delete(want, idx, idx+1)
				}
			case "modify":
				lines = append(lines, "4", name)
				if idx >= 0 {
					lines = append(lines, name, "1", "c", fmt.Sprint(100+i), "d")
					want[idx].speed = 100 + i
				}
			}
		}
		lines = append(lines, "0")

		f := newFixture(script(lines...))
		f.camels(nil).Show()

		col := f.animals.Mammals.Camels
		if col.Len() != len(want) {
			t.Fatalf("len = %d, want %d", col.Len(), len(want))
		}
		for i, r := range col.All() {
			if r.Name != want[i].name || r.Speed != want[i].speed {
				t.Fatalf("record %d = %s/%d, want %s/%d", i, r.Name, r.Speed, want[i].name, want[i].speed)
			}
		}
		if strings.Contains(f.output(), "Invalid") {
			t.Fatalf("valid script reported invalid input:\n%s", f.output())
		}
	})
}

// TestProperty_InvalidMenuInputLeavesDataUnchanged feeds lines that can never
// map to a CRUD choice.
func TestProperty_InvalidMenuInputLeavesDataUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bad := rapid.SliceOf(rapid.OneOf(
			rapid.StringMatching(`[a-z ]{0,5}`),
			rapid.StringMatching(`[5-9][0-9]{0,2}`),
			rapid.StringMatching(`-[1-9][0-9]{0,2}`),
		)).Draw(t, "lines")

		f := newFixture(script(append(slices.Clone(bad), "0")...))
		seed := models.NewCamel("Bob", 5, "brown", 20, "herbivore")
		f.animals.Mammals.Camels.Add(seed)
		f.camels(nil).Show()

		if f.animals.Mammals.Camels.Len() != 1 || f.animals.Mammals.Camels.At(0) != seed {
			t.Fatalf("collection changed")
		}
		if seed.Name != "Bob" || seed.Age != 5 || seed.Color != "brown" || seed.Speed != 20 || seed.Diet != "herbivore" {
			t.Fatalf("record changed: %+v", *seed)
		}
		if got := strings.Count(f.output(), "Invalid choice. Try again."); got != len(bad) {
			t.Fatalf("invalid choice reported %d times, want %d", got, len(bad))
		}
	})
}
