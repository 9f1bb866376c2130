package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/devluplabs/socterm/internal/project"
)

// Row is one data line of the sheet keyed by header.
type Row map[string]string

// Field returns the first non-empty value among names, trying exact header
// matches before case-insensitive ones. Headers that differ only in case are
// tried in sorted order.
func (r Row) Field(names ...string) string {
	for _, name := range names {
		if v := r[name]; v != "" {
			return v
		}
	}
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, name := range names {
		for _, key := range keys {
			if v := r[key]; v != "" && strings.EqualFold(key, name) {
				return v
			}
		}
	}
	return ""
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// ParseTable parses a CSV or TSV export. A header line containing a tab
// selects TSV. A table with no data line yields no rows.
func ParseTable(text string) ([]Row, error) {
	lines := lineBreak.Split(text, -1)
	if len(lines) <= 1 {
		return nil, nil
	}
	if strings.Contains(lines[0], "\t") {
		return parseTSV(lines), nil
	}
	return parseCSV(lines)
}

func parseTSV(lines []string) []Row {
	headers := strings.Split(lines[0], "\t")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, makeRow(headers, strings.Split(line, "\t")))
	}
	return rows
}

// parseCSV reads each line on its own, so an unbalanced quote only affects
// the line it appears on.
func parseCSV(lines []string) ([]Row, error) {
	headers, err := readCSVLine(lines[0])
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []Row
	for n, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := readCSVLine(line)
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", n+2, err)
		}
		if blank(record) {
			continue
		}
		rows = append(rows, makeRow(headers, record))
	}
	return rows, nil
}

func readCSVLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	return record, err
}

func makeRow(headers, values []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(values) {
			row[h] = strings.TrimSpace(values[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Column aliases seen across sheet revisions.
var (
	techStackColumns   = []string{"Tech Stack (Comma separated)", "Tech Stack (Comma rated)"}
	statusColumns      = []string{"Status", "status"}
	currentDescColumns = []string{"Current Desc", "Current Description", "CurrentDesc", "current desc"}
	liveLinksColumns   = []string{"Live Links", "Live Link", "Live Links (comma separated)"}
	githubColumns      = []string{"Project Github", "Project GitHub", "Project Github Url", "Project GitHub Url", "Project Git Repo", "Github", "GitHub"}
)

var linkSeparators = regexp.MustCompile(`[,;\n\r]+`)

// RowsToProjects maps sheet rows to projects. IDs are 1-based row indices.
func RowsToProjects(rows []Row) []project.Project {
	projects := make([]project.Project, 0, len(rows))
	for i, row := range rows {
		p := project.Project{
			ID:            strconv.Itoa(i + 1),
			Name:          row["Project Name"],
			Description:   row["description"],
			TechStack:     splitTechStack(row.Field(techStackColumns...)),
			Category:      strings.TrimSpace(row["Category"]),
			Status:        project.ParseStatus(row.Field(statusColumns...)),
			CurrentDesc:   strings.TrimSpace(row.Field(currentDescColumns...)),
			LiveLinks:     splitLinks(row.Field(liveLinksColumns...)),
			ProjectGithub: strings.TrimSpace(row.Field(githubColumns...)),
			ProjectDoc:    row["Project Doc"],
		}

		p.Mentors = append(p.Mentors, mentorFrom(row, 1))
		for n := 2; n <= project.MaxMentors; n++ {
			if row[fmt.Sprintf("Mentor %d Name", n)] != "" {
				p.Mentors = append(p.Mentors, mentorFrom(row, n))
			}
		}

		projects = append(projects, p)
	}
	return projects
}

func mentorFrom(row Row, n int) project.Mentor {
	prefix := fmt.Sprintf("Mentor %d ", n)
	return project.Mentor{
		Name:     row[prefix+"Name"],
		Role:     "Project Mentor",
		Email:    row[prefix+"Email"],
		LinkedIn: row[prefix+"LinkedIn Url"],
		GitHub:   row[prefix+"Github Url"],
	}
}

func splitTechStack(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, titleWords(strings.TrimSpace(part)))
	}
	return out
}

func splitLinks(raw string) []string {
	var out []string
	for _, l := range linkSeparators.Split(raw, -1) {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// titleWords upper-cases every word character that starts a word, so
// "node.js" becomes "Node.Js".
func titleWords(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if isWordRune(r) && (i == 0 || !isWordRune(runes[i-1])) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

func isWordRune(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
