package sheets

import (
	"testing"

	"github.com/devluplabs/socterm/internal/project"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTableCSV(t *testing.T) {
	text := "Project Name,description,Category\r\n" +
		"Alpha,\"Builds things, fast\",raid\r\n" +
		"\r\n" +
		"  Beta  ,plain\n"

	rows, err := ParseTable(text)
	require.NoError(t, err)

	want := []Row{
		{"Project Name": "Alpha", "description": "Builds things, fast", "Category": "raid"},
		{"Project Name": "Beta", "description": "plain", "Category": ""},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseTable mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTableTSV(t *testing.T) {
	text := "Project Name\t description \tStatus\nGamma\t uses, commas \t Ongoing\n\t\t\n"

	rows, err := ParseTable(text)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Gamma", rows[0]["Project Name"])
	assert.Equal(t, "uses, commas", rows[0]["description"])
	assert.Equal(t, "Ongoing", rows[0]["Status"])
}

func TestParseTableStrayQuoteStaysOnItsLine(t *testing.T) {
	rows, err := ParseTable("Project Name,description\nA,\"broken\nB,ok\nC,ok\n")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0]["Project Name"])
	assert.Contains(t, rows[0]["description"], "broken")
	assert.Equal(t, Row{"Project Name": "B", "description": "ok"}, rows[1])
	assert.Equal(t, Row{"Project Name": "C", "description": "ok"}, rows[2])
}

func TestParseTableHeaderOnly(t *testing.T) {
	for _, text := range []string{"", "Project Name,description", "Project Name,description\n"} {
		rows, err := ParseTable(text)
		assert.NoError(t, err)
		assert.Empty(t, rows, "text %q", text)
	}
}

func TestRowField(t *testing.T) {
	row := Row{"status": "", "STATUS": "archived", "Status": ""}
	assert.Equal(t, "archived", row.Field("Status"))

	row = Row{"Current Description": "exact", "current desc": "lower"}
	assert.Equal(t, "exact", row.Field("Current Desc", "Current Description"))
	assert.Equal(t, "", row.Field("Nope"))

	row = Row{"status": "lower", "STATUS": "upper", "Status ": "spaced"}
	for i := 0; i < 20; i++ {
		assert.Equal(t, "upper", row.Field("Status"))
	}
}

func TestRowsToProjects(t *testing.T) {
	rows := []Row{
		{
			"Project Name":                 "Campus Map",
			"description":                  "Interactive map",
			"Tech Stack (Comma separated)": "react, node.js ,go",
			"Mentor 1 Name":                "Ada",
			"Mentor 1 Email":               "ada@example.com",
			"Mentor 1 LinkedIn Url":        "https://linkedin.com/in/ada",
			"Mentor 2 Name":                "",
			"Mentor 3 Name":                "Grace",
			"Mentor 3 Github Url":          "https://github.com/grace",
			"Category":                     " SoC x RAID ",
			"status":                       " Completed ",
			"Current Desc":                 "Shipped v2",
			"Live Links":                   "map.example.com; https://demo.example.com\nhttps://alt.example.com",
			"Project GitHub Url":           " https://github.com/devlup/map ",
			"Project Doc":                  "https://docs.example.com",
		},
		{
			"Project Name":             "Bare",
			"Tech Stack (Comma rated)": "python",
		},
	}

	got := RowsToProjects(rows)
	want := []project.Project{
		{
			ID:          "1",
			Name:        "Campus Map",
			Description: "Interactive map",
			TechStack:   []string{"React", "Node.Js", "Go"},
			Mentors: []project.Mentor{
				{Name: "Ada", Role: "Project Mentor", Email: "ada@example.com", LinkedIn: "https://linkedin.com/in/ada"},
				{Name: "Grace", Role: "Project Mentor", GitHub: "https://github.com/grace"},
			},
			Category:      "SoC x RAID",
			Status:        project.StatusCompleted,
			CurrentDesc:   "Shipped v2",
			LiveLinks:     []string{"map.example.com", "https://demo.example.com", "https://alt.example.com"},
			ProjectGithub: "https://github.com/devlup/map",
			ProjectDoc:    "https://docs.example.com",
		},
		{
			ID:        "2",
			Name:      "Bare",
			TechStack: []string{"Python"},
			Mentors:   []project.Mentor{{Role: "Project Mentor"}},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RowsToProjects mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleWords(t *testing.T) {
	tests := map[string]string{
		"node.js":          "Node.Js",
		"machine learning": "Machine Learning",
		"c#":               "C#",
		"AR/VR":            "AR/VR",
		"":                 "",
		"tensorflow_x":     "Tensorflow_x",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleWords(in), "input %q", in)
	}
}
