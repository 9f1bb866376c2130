package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	topN        = 5
	maxBarWidth = 30
)

// FormatReport renders s as the plain-text block printed in the terminal.
func FormatReport(s Snapshot, now time.Time) string {
	var b strings.Builder

	b.WriteString("DevlUp Projects Archive - Session Analytics\n")
	b.WriteString("===========================================\n")
	fmt.Fprintf(&b, "Session:          %s\n", shortID(s.SessionID))
	fmt.Fprintf(&b, "Uptime:           %s\n", now.Sub(s.Start).Truncate(time.Second))
	fmt.Fprintf(&b, "Total page views: %d\n", s.TotalPageViews())
	b.WriteString("Unique visitors:  1\n")
	fmt.Fprintf(&b, "Commands run:     %d", s.TotalCommands())
	if s.UnknownCommands > 0 {
		fmt.Fprintf(&b, " (%d unknown)", s.UnknownCommands)
	}
	b.WriteString("\n")
	if s.ProjectsLoaded > 0 {
		source := "live sheet"
		if s.Fallback {
			source = "mock data"
		}
		fmt.Fprintf(&b, "Projects loaded:  %d (%s)\n", s.ProjectsLoaded, source)
	}

	writeTop(&b, "Top pages", s.PageViews)
	writeTop(&b, "Top projects", s.ProjectViews)
	writeTop(&b, "Top commands", s.Commands)

	b.WriteString("\nHourly distribution:\n")
	peak := 0
	for _, n := range s.Hourly {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		b.WriteString("  (no activity yet)\n")
	}
	for hour, n := range s.Hourly {
		if n == 0 {
			continue
		}
		width := n * maxBarWidth / peak
		if width == 0 {
			width = 1
		}
		fmt.Fprintf(&b, "  %02d:00 %s %d\n", hour, strings.Repeat("█", width), n)
	}

	return strings.TrimRight(b.String(), "\n")
}

type count struct {
	key string
	n   int
}

// topCounts orders counts descending, ties by key, and keeps the first topN.
func topCounts(m map[string]int) []count {
	out := make([]count, 0, len(m))
	for k, n := range m {
		out = append(out, count{k, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].key < out[j].key
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func writeTop(b *strings.Builder, title string, m map[string]int) {
	top := topCounts(m)
	if len(top) == 0 {
		return
	}
	width := 0
	for _, c := range top {
		if len(c.key) > width {
			width = len(c.key)
		}
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, c := range top {
		fmt.Fprintf(b, "  %-*s  %d\n", width, c.key, c.n)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
