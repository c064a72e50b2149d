package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/chargen/internal/domain/entities"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeCharacter prints a character, rendering features in the gender of
// its name.
func writeCharacter(w io.Writer, c *entities.GeneratedCharacter) {
	fmt.Fprintf(w, "%s (%s)\n", c.Name.FullName(), c.Name.Gender)

	writeFeatures(w, "Positive features", c.PositiveFeatures, c.Name.Gender)
	writeFeatures(w, "Negative features", c.NegativeFeatures, c.Name.Gender)

	if len(c.Items) > 0 {
		fmt.Fprintln(w, "\nItems:")
		for _, item := range c.Items {
			writeItem(w, item)
		}
	}
}

func writeFeatures(w io.Writer, title string, features []entities.Feature, gender entities.Gender) {
	if len(features) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, f := range features {
		text := f.TextMasc
		if gender == entities.GenderFeminine {
			text = f.TextFem
		}
		if f.Description != "" {
			fmt.Fprintf(w, "  - %s: %s\n", text, f.Description)
		} else {
			fmt.Fprintf(w, "  - %s\n", text)
		}
	}
}

func writeItem(w io.Writer, item entities.Item) {
	if item.Description != "" {
		fmt.Fprintf(w, "  - %s: %s\n", item.Name, item.Description)
	} else {
		fmt.Fprintf(w, "  - %s\n", item.Name)
	}
}

// writeRows prints one line per listed row.
func writeRows(w io.Writer, rows any) {
	switch rows := rows.(type) {
	case []entities.Theme:
		writeCount(w, len(rows), "themes")
		for _, t := range rows {
			fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Name)
		}
	case []entities.Name:
		writeCount(w, len(rows), "names")
		for _, n := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, n.FullName(), n.Gender)
		}
	case []entities.Feature:
		writeCount(w, len(rows), "features")
		for _, f := range rows {
			polarity := "-"
			if f.IsGood {
				polarity = "+"
			}
			fmt.Fprintf(w, "%d\t%s\t%s / %s\n", f.ID, polarity, f.TextMasc, f.TextFem)
		}
	case []entities.Item:
		writeCount(w, len(rows), "items")
		for _, i := range rows {
			fmt.Fprintf(w, "%d\t%s\n", i.ID, i.Name)
		}
	}
}

func writeCount(w io.Writer, n int, label string) {
	if n == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return
	}
	fmt.Fprintf(w, "%d %s:\n", n, label)
}
