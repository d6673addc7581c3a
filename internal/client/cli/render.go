package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/overlay"
)

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users on this page.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAVATAR")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Email, u.Avatar)
	}
	_ = tw.Flush()
}

// pagerWindow is how many neighbours of the current page the pager shows
// on each side.
const pagerWindow = 2

// renderPager draws the numeric pagination control, current page bracketed.
// Long ranges collapse to a window around the current page:
//
//	« 1 … 3 4 [5] 6 7 … 10 »
func renderPager(w io.Writer, page, totalPages int) {
	if totalPages < 1 {
		return
	}

	cur := min(max(page, 1), totalPages)
	lo := 1
	if cur > 1+pagerWindow {
		lo = cur - pagerWindow
	}
	hi := totalPages
	if cur < totalPages-pagerWindow {
		hi = cur + pagerWindow
	}

	var parts []string
	if page > 1 {
		parts = append(parts, "«")
	}
	if lo > 1 {
		parts = append(parts, "1")
		if lo > 2 {
			parts = append(parts, "…")
		}
	}
	for i := lo; ; i++ {
		if i == page {
			parts = append(parts, fmt.Sprintf("[%d]", i))
		} else {
			parts = append(parts, strconv.Itoa(i))
		}
		if i == hi {
			break
		}
	}
	if hi < totalPages {
		if hi < totalPages-1 {
			parts = append(parts, "…")
		}
		parts = append(parts, strconv.Itoa(totalPages))
	}
	if page < totalPages {
		parts = append(parts, "»")
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func renderOverlays(w io.Writer, entries map[int]models.UserPatch) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No local edits.")
		return
	}

	show := func(s *string) string {
		if s == nil {
			return "-"
		}
		return *s
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL")
	for _, id := range overlay.IDs(entries) {
		p := entries[id]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", id, show(p.FirstName), show(p.LastName), show(p.Email))
	}
	_ = tw.Flush()
}
