package tui

import (
	"fmt"
	"strings"

	"github.com/devluplabs/socterm/internal/project"
)

const statsAbout = `## About These Analytics

Counts cover this session only. Page views are recorded on every page
change, commands on every line entered at the prompt, and project views
whenever a project detail page is opened. Nothing leaves this machine.

Run ` + "`stats --live`" + ` on the terminal for a report that refreshes on its own.`

const contactMarkdown = `# Contact Us

Have questions about DevlUp Labs Summer of Code? Reach out.

- **Email:** devluplabs@iitj.ac.in
- **Location:** IIT Jodhpur, Rajasthan, India
- **Website:** https://devluplabs.tech
- **GitHub:** https://github.com/devlup-labs
- **LinkedIn:** https://linkedin.com/company/devlup-labs

## Frequently Asked Questions

### Who can participate?
Any student of IIT Jodhpur with an interest in open source. No prior
experience is required, only the willingness to learn.

### How do I apply?
Type ` + "`apply`" + ` on the terminal. When applications are open it takes
you to the application form.

### Can I propose my own project?
Yes. Contact us with a short proposal and we will help you find a mentor.

### How are mentors assigned?
Every project lists its mentors. Use ` + "`mentors`" + ` on the terminal to see all of them.

## Contribute

This archive is open source: https://github.com/lakshyajain-0291/Devlup_SOC`

// statsContent renders the analytics report followed by the explanation.
func (m Model) statsContent() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Code.Render(m.term.StatsEntry().Content))
	sb.WriteString("\n")
	sb.WriteString(m.markdown.Render(statsAbout, m.ui.Width()-2))
	return sb.String()
}

func (m Model) contactContent() string {
	return m.markdown.Render(contactMarkdown, m.ui.Width()-2)
}

// timelineMarkdown lists each program's milestones with their dates as
// written. A program with no dates yet is shown as coming soon.
func timelineMarkdown(programs []project.Program) string {
	var sb strings.Builder
	sb.WriteString("# Program Timeline\n\nImportant dates and milestones for our programs\n")
	for _, p := range programs {
		fmt.Fprintf(&sb, "\n## %s\n\n", p.Name)
		if !p.Announced() {
			sb.WriteString("**Coming Soon.** Timeline will be announced soon.\n")
			continue
		}
		for i, ms := range p.Milestones {
			fmt.Fprintf(&sb, "%d. **%s** (%s)  \n   %s\n", i+1, ms.Title, ms.Date, ms.Description)
		}
	}
	return sb.String()
}

func (m Model) timelineContent() string {
	return m.markdown.Render(timelineMarkdown(project.Timeline()), m.ui.Width()-2)
}
