package content

import "time"

type Resume struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	Contact     Contact      `json:"contact"`
	Summary     string       `json:"summary"`
	Skills      Skills       `json:"skills"`
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
	Languages   []string     `json:"languages"`
	Interests   []string     `json:"interests"`
	LastUpdated string       `json:"last_updated"`
}

type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

type Skills struct {
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Database    []string `json:"database"`
	Tools       []string `json:"tools"`
	Other       []string `json:"other"`
}

type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Period       string   `json:"period"`
	GPA          string   `json:"gpa"`
	Status       string   `json:"status"`
	Focus        string   `json:"focus,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
	Reviews      []Review `json:"reviews,omitempty"`
}

type Review struct {
	Customer string `json:"customer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ResumeDocument returns the resume payload with last_updated stamped at
// request time
func ResumeDocument(now time.Time) Resume {
	return Resume{
		Name:     "Samuel Rincon",
		Title:    "Software Engineer | Backend Developer",
		Location: "Conroe, Texas",
		Contact: Contact{
			Email:    "samuelrinconm@yahoo.com",
			LinkedIn: "www.linkedin.com/in/samuelrincon",
			GitHub:   "https://github.com/Samuelr2112",
			Phone:    "(786) 878-9292",
			Website:  "https://www.samuelrincon.com",
		},
		Summary: "Computer Science graduate with hands-on experience in backend development, API design, and database management. Passionate about creating efficient, scalable software solutions with strong problem-solving abilities and leadership skills.",
		Skills: Skills{
			Programming: []string{"Python", "Java", "JavaScript", "SQL", "HTML", "CSS"},
			Frameworks:  []string{"FastAPI", "Spring Boot", "Flask", "Bootstrap", "REST API"},
			Database:    []string{"SQLite", "MySQL", "PostgreSQL"},
			Tools:       []string{"Git", "Docker", "AWS", "JUnit", "Maven"},
			Other:       []string{"Backend Development", "API Design", "Database Management", "Problem Solving", "Team Leadership"},
		},
		Education: []Education{
			{
				Institution: "Southern New Hampshire University",
				Degree:      "Bachelor of Science in Computer Science",
				Period:      "May 2023 - March 2025",
				GPA:         "3.69",
				Status:      "Graduated",
				Focus:       "Backend Development, API Design, Database Management",
				Achievements: []string{
					"Multiple honors and certificates for outstanding performance",
					"Merit recognition available at meritpages.com/samuelrincon",
				},
			},
			{
				Institution: "Lone Star College",
				Degree:      "Associate of Arts",
				Period:      "August 2019 – May 2022",
				GPA:         "3.75",
				Status:      "Graduated",
			},
		},
		Experience: []Experience{
			{
				Title:    "Online Grocery Associate & In-Home Delivery Driver",
				Company:  "Walmart",
				Location: "The Woodlands, TX",
				Period:   "March 2023 - Present",
				Achievements: []string{
					"Delivered customer orders while maintaining a friendly, respectful, and professional relationship with clients.",
					"Worked under time pressure to meet strict deadlines and ensure efficient order fulfillment.",
					"Managed TC devices and backroom operations using the GIF software system for inventory control and organization.",
				},
			},
			{
				Title:    "Moving Crew Lead & Operations Coordinator",
				Company:  "Out The Door Moving",
				Location: "Conroe, TX",
				Period:   "June 2022 - March 2023",
				Achievements: []string{
					"Led teams of 2-6 movers with 100% customer satisfaction",
					"Implemented efficient logistics reducing move time by 20%",
					"Trained 12+ new team members on safety protocols",
				},
				Reviews: []Review{
					{
						Customer: "Michael Coleman",
						Rating:   5,
						Comment:  "Samuel and Kevin were exactly the help we needed. They took very good care of our possessions and were very professional.",
					},
					{
						Customer: "Janese Sokulski",
						Rating:   5,
						Comment:  "Enjoyed the attitude of these young men and they did an excellent job. On time and worked very hard. Highly recommend this group Samuel, Jony, Gabriel, Juan and Jose.",
					},
					{
						Customer: "Irene Patricia Regalo Estrada",
						Rating:   5,
						Comment:  "We had the pleasure of having Samuel, Kevin and Juan move us to our new home. Very respectful, efficient, and quick. They also made sure not to damage any of our items.",
					},
					{
						Customer: "Rebecca Stone",
						Rating:   5,
						Comment:  "Samuel and Marcelo were so polite and moved so quickly! I was very pleased with their work. Would hire them again for sure!",
					},
					{
						Customer: "Barraque Monfils-Evangelista",
						Rating:   5,
						Comment:  "Samuel and Daniel were quick, efficient, and patient when we had to wait at the storage unit. I recommend requesting them by name.",
					},
				},
			},
			{
				Title:    "Web & Systems Assistant (Part-Time)",
				Company:  "Aldea Music Corp",
				Location: "The Woodlands, TX",
				Period:   "March 2022 – Present",
				Achievements: []string{
					"Managed and maintained the company's HTML-based online receipt system",
					"Provided updates and light maintenance for the company website",
					"Assisted with digital record-keeping and ensuring smooth operation of online systems",
				},
			},
		},
		Languages:   []string{"English (Native)", "Spanish (Conversational)"},
		Interests:   []string{"Backend Development", "Software Engineering", "Problem Solving", "Technology Innovation"},
		LastUpdated: now.Format(time.RFC3339),
	}
}
