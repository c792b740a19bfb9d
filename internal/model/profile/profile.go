package profile

// Project describes one portfolio entry surfaced by the assistant.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Profile captures the owner facts the assistant can speak about. This is
// static knowledge, not logic: the renderer and the LLM prompt both read it.
type Profile struct {
	Name       string    `json:"name"`
	ShortName  string    `json:"shortName"`
	Title      string    `json:"title"`
	Email      string    `json:"email"`
	Location   string    `json:"location"`
	Summary    string    `json:"summary"`
	Education  string    `json:"education"`
	Tech       []string  `json:"tech"`
	SoftSkills []string  `json:"softSkills"`
	Languages  []string  `json:"languages"`
	Projects   []Project `json:"projects"`
	Services   []string  `json:"services"`
}

// Seed provides the default owner profile shipped with the portfolio.
func Seed() Profile {
	return Profile{
		Name:      "Herve Twubahimana",
		ShortName: "Herve",
		Title:     "Full-Stack Developer",
		Email:     "twubaherve@gmail.com",
		Location:  "Kigali, Rwanda",
		Summary: "Early-career professional experienced in software development (ReactJS), " +
			"tender coordination, business development support, and Microsoft 365 IT support.",
		Education: "Bachelor in Business Information Technology, University of Rwanda",
		Tech: []string{
			"HTML", "CSS", "JavaScript", "ReactJS", "SEO (on-page)",
			"Figma (basics)", "Microsoft 365", "Digital Record Management",
		},
		SoftSkills: []string{
			"Communication", "Problem-solving", "Strategic thinking",
			"Client outreach", "Process improvement", "Team collaboration",
		},
		Languages: []string{"English", "French", "Kinyarwanda"},
		Projects: []Project{
			{Name: "Harmony Spa Website", Description: "Responsive site with booking system and SEO focus"},
			{Name: "Wouessi Website", Description: "ReactJS development, frontend optimization, on-page SEO contribution"},
			{Name: "Herve Designs", Description: "Personal business site showcasing services and offers"},
		},
		Services: []string{
			"Website development (React + frontend)",
			"SEO optimization",
			"Microsoft 365 support",
			"Digital outreach campaign support",
			"Tender coordination assistance",
		},
	}
}
