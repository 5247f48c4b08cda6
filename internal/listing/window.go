package listing

// PageLink is one entry of the pagination control: a page number or a gap.
type PageLink struct {
	Number   int
	Current  bool
	Ellipsis bool
}

const windowEdge = 3

// PageWindow lists the page controls to render: the first and last three
// pages plus the neighbours of current, each gap collapsed to one ellipsis.
func PageWindow(current, total int) []PageLink {
	if total <= 0 {
		return []PageLink{}
	}
	current = max(1, min(current, total))
	links := make([]PageLink, 0, 2*windowEdge+5)
	gap := false
	for page := 1; page <= total; page++ {
		visible := page <= windowEdge || page > total-windowEdge || (page >= current-1 && page <= current+1)
		if !visible {
			if !gap {
				links = append(links, PageLink{Ellipsis: true})
				gap = true
			}
			continue
		}
		gap = false
		links = append(links, PageLink{Number: page, Current: page == current})
	}
	return links
}
