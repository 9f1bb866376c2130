package project

// MockProjects is the fallback list shown when the sheet cannot be fetched.
// Each call returns a fresh copy.
func MockProjects() []Project {
	return []Project{
		{
			ID:          "1",
			Name:        "AI-Powered Chatbot",
			Description: "Build a conversational AI chatbot using modern NLP techniques to assist students with programming questions.",
			TechStack:   []string{"Python", "TensorFlow", "Flask", "React"},
			Mentors: []Mentor{{
				Name:     "Dr. Sarah Chen",
				Role:     "AI Research Lead",
				Email:    "sarah.chen@example.com",
				LinkedIn: "https://linkedin.com/in/sarahchen",
			}},
			Category: "1",
		},
		{
			ID:          "2",
			Name:        "Cross-Platform Mobile Game",
			Description: "Develop an educational puzzle game that teaches programming concepts while entertaining users.",
			TechStack:   []string{"Unity", "C#", "Firebase", "AR/VR"},
			Mentors: []Mentor{{
				Name:  "Michael Rodriguez",
				Role:  "Game Development Instructor",
				Email: "michael.r@example.com",
			}},
			Category: "soc x raid",
		},
		{
			ID:          "3",
			Name:        "Sustainable Smart Home Dashboard",
			Description: "Create a dashboard to monitor and optimize energy usage in smart homes with ML-based recommendations.",
			TechStack:   []string{"React", "Node.js", "TensorFlow.js", "IoT"},
			Mentors: []Mentor{{
				Name:     "Priya Sharma",
				Role:     "IoT Specialist",
				Email:    "priya.sharma@example.com",
				LinkedIn: "https://linkedin.com/in/priyasharma",
			}},
		},
		{
			ID:          "4",
			Name:        "Open Source Contribution Tracker",
			Description: "Build a platform to track and reward open source contributions from students and community members.",
			TechStack:   []string{"TypeScript", "Next.js", "GraphQL", "GitHub API"},
			Mentors: []Mentor{{
				Name:     "James Wilson",
				Role:     "Open Source Advocate",
				Email:    "james.wilson@example.com",
				LinkedIn: "https://linkedin.com/in/jameswilson",
			}},
		},
		{
			ID:          "5",
			Name:        "Accessibility Testing Tool",
			Description: "Develop a browser extension that helps developers identify and fix accessibility issues in web applications.",
			TechStack:   []string{"JavaScript", "Browser Extensions", "ARIA", "Testing"},
			Mentors: []Mentor{{
				Name:  "Elena Martinez",
				Role:  "Accessibility Expert",
				Email: "elena.m@example.com",
			}},
		},
	}
}
