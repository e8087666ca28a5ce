package ui

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type Font struct {
	Family  string
	Weights []int
	Subsets []string
}

var (
	Inter    = Font{Family: "Inter", Subsets: []string{"latin"}}
	Lusitana = Font{Family: "Lusitana", Weights: []int{700, 400}, Subsets: []string{"latin"}}
)

// StylesheetURL builds the Google Fonts css2 URL that loads fonts.
func StylesheetURL(fonts ...Font) string {
	q := url.Values{}
	subsets := map[string]bool{}
	for _, f := range fonts {
		q.Add("family", f.familySpec())
		for _, s := range f.Subsets {
			subsets[s] = true
		}
	}
	q.Set("display", "swap")

	// css2 reads repeated family params, which Encode keeps in order
	u := "https://fonts.googleapis.com/css2?" + q.Encode()
	if len(subsets) > 0 {
		names := make([]string, 0, len(subsets))
		for s := range subsets {
			names = append(names, s)
		}
		sort.Strings(names)
		u += "&subset=" + strings.Join(names, ",")
	}
	return u
}

func (f Font) familySpec() string {
	if len(f.Weights) == 0 {
		return f.Family
	}
	ws := append([]int(nil), f.Weights...)
	sort.Ints(ws)
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.Itoa(w)
	}
	return f.Family + ":wght@" + strings.Join(parts, ";")
}
